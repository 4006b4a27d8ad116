// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package desktop registers the "desktop" plugin, which exposes screen,
// window, mouse and keyboard access.
package desktop

import (
	"github.com/open-world-agents/mkdocstrings-owa/pkg/module"
	"github.com/open-world-agents/mkdocstrings-owa/pkg/plugin"
)

// Name is the entry point name of the plugin.
const Name = "desktop"

// Version of the desktop plugin declaration.
const Version = "0.3.2"

const importRoot = "owa.env.desktop"

func init() {
	plugin.MustRegister(Name, Load)
	module.MustRegister(&module.Static{
		ModulePath:    importRoot,
		ModuleVersion: Version,
		ModuleDoc:     "Desktop environment plugin for screen, window and input devices.",
		Members: []module.Member{
			{Name: "screen", Kind: "module"},
			{Name: "window", Kind: "module"},
			{Name: "keyboard_mouse", Kind: "module"},
		},
	})
}

// Load returns the desktop plugin declaration.
func Load() (*plugin.Spec, error) {
	callables := []struct{ name, target, desc string }{
		{"screen.capture", "screen.capture:capture_screen", "Capture the current screen as an image."},
		{"window.get_active_window", "window:get_active_window", "Return the focused window."},
		{"window.get_window_by_title", "window:get_window_by_title", "Find a window by its title."},
		{"window.when_active", "window:when_active", "Run a callable only while a window is focused."},
		{"mouse.click", "keyboard_mouse.callables:click", "Click a mouse button."},
		{"mouse.move", "keyboard_mouse.callables:mouse_move", "Move the pointer to absolute coordinates."},
		{"mouse.position", "keyboard_mouse.callables:get_mouse_position", "Return the pointer position."},
		{"keyboard.press", "keyboard_mouse.callables:press", "Press a key."},
		{"keyboard.release", "keyboard_mouse.callables:release", "Release a key."},
		{"keyboard.type", "keyboard_mouse.callables:keyboard_type", "Type a string."},
	}
	listeners := []struct{ name, target, desc string }{
		{"keyboard", "keyboard_mouse.listeners:KeyboardListenerWrapper", "Stream keyboard events."},
		{"mouse", "keyboard_mouse.listeners:MouseListenerWrapper", "Stream mouse events."},
		{"keyboard_state", "keyboard_mouse.listeners:KeyboardStateListener", "Stream the set of pressed keys."},
		{"mouse_state", "keyboard_mouse.listeners:MouseStateListener", "Stream pointer position and buttons."},
	}
	runnables := []struct{ name, target, desc string }{
		{"window_publisher", "window:WindowPublisher", "Publish active window changes."},
	}

	spec := &plugin.Spec{
		Namespace:   "desktop",
		Version:     Version,
		Description: "Desktop environment plugin for screen, window and input devices.",
		Author:      "Open World Agents",
		Kind:        plugin.DefaultKind,
	}
	for _, group := range []struct {
		t     plugin.ComponentType
		items []struct{ name, target, desc string }
	}{
		{plugin.ComponentTypeCallables, callables},
		{plugin.ComponentTypeListeners, listeners},
		{plugin.ComponentTypeRunnables, runnables},
	} {
		for _, it := range group.items {
			spec.Components = append(spec.Components, plugin.Component{
				Type:        group.t,
				Name:        it.name,
				ImportPath:  importRoot + "." + it.target,
				Description: it.desc,
			})
		}
	}
	return spec, nil
}
