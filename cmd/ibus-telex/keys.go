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

import "github.com/andodevel/telex-engine/telex"

const (
	IBusBackSpace = 0xff08
	IBusTab       = 0xff09
	IBusReturn    = 0xff0d
	IBusEscape    = 0xff1b
	// Shift_L .. Hyper_R
	IBusModifierKeyFirst = 0xffe1
	IBusModifierKeyLast  = 0xffee
)

const (
	IBusShiftMask   = 1 << 0
	IBusLockMask    = 1 << 1
	IBusControlMask = 1 << 2
	IBusMod1Mask    = 1 << 3
	IBusSuperMask   = 1 << 26
	IBusReleaseMask = 1 << 30
)

type keyAction uint8

const (
	// keyIgnore leaves the preedit alone and forwards the key.
	keyIgnore keyAction = iota
	// keyCompose types the key into the preedit.
	keyCompose
	keyBackspace
	// keyWordBreak ends the word; the symbol may be committed with it.
	keyWordBreak
	// keyCommit commits the preedit and forwards the key.
	keyCommit
)

func (a keyAction) String() string {
	switch a {
	case keyIgnore:
		return "ignore"
	case keyCompose:
		return "compose"
	case keyBackspace:
		return "backspace"
	case keyWordBreak:
		return "word-break"
	case keyCommit:
		return "commit"
	}
	return "unknown"
}

func classifyKey(im telex.InputMethod, keyVal uint32, state uint32) keyAction {
	if state&IBusReleaseMask != 0 {
		return keyIgnore
	}
	if keyVal >= IBusModifierKeyFirst && keyVal <= IBusModifierKeyLast {
		return keyIgnore
	}
	if state&(IBusControlMask|IBusMod1Mask|IBusSuperMask) != 0 {
		return keyCommit
	}
	if keyVal == IBusBackSpace {
		return keyBackspace
	}
	// printable ASCII keysyms are their own code points
	if keyVal < 0x20 || keyVal > 0x7e {
		return keyCommit
	}
	var keyRune = rune(keyVal)
	if im.CanProcessKey(keyRune) {
		return keyCompose
	}
	if telex.IsWordBreakSymbol(keyRune) {
		return keyWordBreak
	}
	return keyCommit
}
