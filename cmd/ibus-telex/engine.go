/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) 2018 Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"sync"
	"unicode/utf8"

	"github.com/BambooEngine/goibus/ibus"
	"github.com/godbus/dbus"
	"github.com/golang/glog"

	"github.com/andodevel/telex-engine/internal/textfield"
	"github.com/andodevel/telex-engine/telex"
)

// preeditOutput is what the engine sends back to the input context.
type preeditOutput struct {
	commit func(text string)
	hide   func()
	update func(text string, cursor uint32, underline bool)
}

type IBusTelexEngine struct {
	sync.Mutex
	ibus.Engine
	out              preeditOutput
	focusWindowClass func() string
	preeditor        *textfield.Field
	inputMethod      telex.InputMethod
	engineName       string
	config           *Config
	wmClasses        string
}

func newIBusTelexEngine(base ibus.Engine, engineName string, config *Config) *IBusTelexEngine {
	var e = &IBusTelexEngine{
		Engine:           base,
		engineName:       engineName,
		focusWindowClass: x11GetFocusWindowClass,
	}
	e.out = preeditOutput{
		commit: func(text string) { e.CommitText(ibus.NewText(text)) },
		hide:   func() { e.HidePreeditText() },
		update: func(text string, cursor uint32, underline bool) {
			var ibusText = ibus.NewText(text)
			if underline {
				ibusText.AppendAttr(ibus.IBUS_ATTR_TYPE_NONE, ibus.IBUS_ATTR_UNDERLINE_SINGLE, 0, uint32(utf8.RuneCountInString(text)))
			}
			e.UpdatePreeditTextWithMode(ibusText, cursor, true, ibus.IBUS_ENGINE_PREEDIT_COMMIT)
		},
	}
	e.applyConfig(config)
	return e
}

// applyConfig rebuilds the preedit field for config. Any text still in
// the preedit is dropped.
func (e *IBusTelexEngine) applyConfig(config *Config) {
	e.config = config
	e.inputMethod = telex.ParseInputMethod(telex.GetInputMethodDefinitions(), config.InputMethod)
	var rules = telex.NewRuleTable(e.inputMethod)
	e.preeditor = textfield.NewWithConverter(textfield.Callbacks{
		OnChange: e.updatePreedit,
		OnClear:  func() { e.out.hide() },
	}, rules.Apply)
}

// ProcessKeyEvent implements IBus.Engine's process_key_event handler. It
// reports whether the key was consumed; unconsumed keys go to the client.
func (e *IBusTelexEngine) ProcessKeyEvent(keyVal uint32, keyCode uint32, state uint32) (bool, *dbus.Error) {
	e.Lock()
	defer e.Unlock()

	var action = classifyKey(e.inputMethod, keyVal, state)
	if action == keyIgnore {
		return false, nil
	}
	glog.V(2).Infof("ProcessKeyEvent > %c | keyCode 0x%04x keyVal 0x%04x | %s", rune(keyVal), keyCode, keyVal, action)
	if inWhiteList(e.config.ExceptedList, e.wmClasses) {
		return false, nil
	}
	return e.preeditProcessKeyEvent(action, keyVal, state)
}

func (e *IBusTelexEngine) FocusIn() *dbus.Error {
	e.Lock()
	defer e.Unlock()

	var oldWmClasses = e.wmClasses
	e.wmClasses = e.focusWindowClass()
	glog.Infof("FocusIn. WM_CLASS=(%s)", e.wmClasses)
	if oldWmClasses != e.wmClasses {
		e.preeditor.Clear()
	}
	return nil
}

func (e *IBusTelexEngine) FocusOut() *dbus.Error {
	glog.V(1).Info("FocusOut.")
	return nil
}

func (e *IBusTelexEngine) Reset() *dbus.Error {
	e.Lock()
	defer e.Unlock()

	glog.V(1).Info("Reset.")
	e.commitPreedit(e.preeditor.Commit())
	return nil
}

// Enable re-reads the config file so edits take effect without
// restarting ibus. A missing file is created with the defaults.
func (e *IBusTelexEngine) Enable() *dbus.Error {
	e.Lock()
	defer e.Unlock()

	glog.V(1).Info("Enable.")
	if err := ensureConfig(e.engineName); err != nil {
		glog.Warningf("%v", err)
	}
	config, err := LoadConfig(e.engineName)
	if err != nil {
		glog.Warningf("%v, keeping current config", err)
		return nil
	}
	e.commitPreedit(e.preeditor.Commit())
	e.applyConfig(config)
	return nil
}

func (e *IBusTelexEngine) Disable() *dbus.Error {
	e.Lock()
	defer e.Unlock()

	glog.V(1).Info("Disable.")
	e.commitPreedit(e.preeditor.Commit())
	return nil
}

func (e *IBusTelexEngine) SetCapabilities(cap uint32) *dbus.Error {
	return nil
}

func (e *IBusTelexEngine) SetCursorLocation(x int32, y int32, w int32, h int32) *dbus.Error {
	return nil
}

func (e *IBusTelexEngine) SetContentType(purpose uint32, hints uint32) *dbus.Error {
	return nil
}
