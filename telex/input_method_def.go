/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This software is licensed under the MIT license. For more information,
 * see <https://github.com/andodevel/telex-engine/blob/master/LICENSE>.
 */

package telex

import (
	"sort"
	"strings"
	"unicode"
)

// InputMethodDefinition maps a key to the action it triggers.
type InputMethodDefinition map[string]string

var InputMethodDefinitions = map[string]InputMethodDefinition{
	"Telex": {
		"s": "DauSac",
		"f": "DauHuyen",
		"r": "DauHoi",
		"x": "DauNga",
		"j": "DauNang",
		"a": "A_Â",
		"e": "E_Ê",
		"o": "O_Ô",
		"w": "UOA_ƯƠĂ",
		"d": "D_Đ",
	},
}

var toneActions = map[string]Tone{
	"DauHuyen": ToneGrave,
	"DauSac":   ToneAcute,
	"DauHoi":   ToneHook,
	"DauNga":   ToneTilde,
	"DauNang":  ToneDot,
}

func GetInputMethodDefinitions() map[string]InputMethodDefinition {
	var t = make(map[string]InputMethodDefinition)
	for k, v := range InputMethodDefinitions {
		t[k] = v
	}
	return t
}

// InputMethod is the parsed form of an InputMethodDefinition. All runes are
// stored in lower case.
type InputMethod struct {
	Name     string
	ToneKeys map[rune]Tone
	// Modifiers maps a modifier key to the plain letters it modifies and
	// their modified form, e.g. 'w' -> {'a': 'ă', 'o': 'ơ', 'u': 'ư'}.
	Modifiers map[rune]map[rune]rune
}

// ParseInputMethod builds the InputMethod named name from defs. Unknown
// actions are ignored; an unknown name yields an empty input method.
func ParseInputMethod(defs map[string]InputMethodDefinition, name string) InputMethod {
	var im = InputMethod{
		Name:      name,
		ToneKeys:  map[rune]Tone{},
		Modifiers: map[rune]map[rune]rune{},
	}
	for key, action := range defs[name] {
		var keyRunes = []rune(strings.ToLower(key))
		if len(keyRunes) != 1 {
			continue
		}
		var k = keyRunes[0]
		if tone, ok := toneActions[action]; ok {
			im.ToneKeys[k] = tone
			continue
		}
		var parts = strings.SplitN(action, "_", 2)
		if len(parts) != 2 {
			continue
		}
		var from = []rune(strings.ToLower(parts[0]))
		var to = []rune(strings.ToLower(parts[1]))
		if len(from) != len(to) {
			continue
		}
		var m = map[rune]rune{}
		for i := range from {
			m[from[i]] = to[i]
		}
		im.Modifiers[k] = m
	}
	return im
}

// ModifierKeys returns the modifier keys in ascending order.
func (im InputMethod) ModifierKeys() []rune {
	var keys []rune
	for k := range im.Modifiers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ToneKeyString returns the tone keys ordered by tone, e.g. "fsrxj".
func (im InputMethod) ToneKeyString() string {
	var keys []rune
	for k := range im.ToneKeys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return im.ToneKeys[keys[i]] < im.ToneKeys[keys[j]] })
	return string(keys)
}

// CanProcessKey reports whether key may take part in a Telex word.
func (im InputMethod) CanProcessKey(key rune) bool {
	return key < unicode.MaxASCII && unicode.IsLetter(key)
}

// IsWordBreakSymbol reports whether r ends the word being composed.
func IsWordBreakSymbol(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsDigit(r)
}
