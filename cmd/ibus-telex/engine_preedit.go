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
	"unicode"
	"unicode/utf8"

	"github.com/godbus/dbus"
	"github.com/golang/glog"

	"github.com/andodevel/telex-engine/telex"
)

func (e *IBusTelexEngine) preeditProcessKeyEvent(action keyAction, keyVal uint32, state uint32) (bool, *dbus.Error) {
	var keyRune = rune(keyVal)

	switch action {
	case keyBackspace:
		if e.preeditor.Len() > 0 {
			e.preeditor.Backspace()
			return true, nil
		}
		return false, nil
	case keyCompose:
		if state&IBusLockMask != 0 {
			keyRune = unicode.ToUpper(keyRune)
		}
		e.preeditor.Type(keyRune)
		return true, nil
	case keyWordBreak:
		if e.config.IBflags&IBcommitWordBreak != 0 {
			e.commitPreedit(e.preeditor.Commit() + string(keyRune))
			return true, nil
		}
	}
	e.commitPreedit(e.preeditor.Commit())
	return false, nil
}

func (e *IBusTelexEngine) updatePreedit(processedStr string, caret int) {
	var encodedStr = e.encodeText(processedStr)
	if encodedStr == "" {
		e.out.hide()
		return
	}
	var cursor = uint32(utf8.RuneCountInString(e.encodeText(string([]rune(processedStr)[:caret]))))
	e.out.update(encodedStr, cursor, e.config.IBflags&IBpreeditUnderline != 0)
}

func (e *IBusTelexEngine) encodeText(text string) string {
	return telex.Encode(e.config.OutputCharset, text)
}

func (e *IBusTelexEngine) commitPreedit(s string) {
	e.out.hide()
	e.commitText(s)
}

func (e *IBusTelexEngine) commitText(str string) {
	if str == "" {
		return
	}
	glog.V(1).Infof("Commit Text [%s]", str)
	e.out.commit(e.encodeText(str))
}
