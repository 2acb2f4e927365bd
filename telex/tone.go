/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This software is licensed under the MIT license. For more information,
 * see <https://github.com/andodevel/telex-engine/blob/master/LICENSE>.
 */

package telex

import "unicode"

type Tone uint8

const (
	ToneNone Tone = iota
	ToneGrave
	ToneAcute
	ToneHook
	ToneTilde
	ToneDot
)

func (t Tone) String() string {
	switch t {
	case ToneGrave:
		return "grave"
	case ToneAcute:
		return "acute"
	case ToneHook:
		return "hook"
	case ToneTilde:
		return "tilde"
	case ToneDot:
		return "dot"
	}
	return "none"
}

// Toned forms of each base letter, indexed by Tone-1.
var lowerTones = map[rune][5]rune{
	'a': {'à', 'á', 'ả', 'ã', 'ạ'},
	'â': {'ầ', 'ấ', 'ẩ', 'ẫ', 'ậ'},
	'ă': {'ằ', 'ắ', 'ẳ', 'ẵ', 'ặ'},
	'e': {'è', 'é', 'ẻ', 'ẽ', 'ẹ'},
	'ê': {'ề', 'ế', 'ể', 'ễ', 'ệ'},
	'i': {'ì', 'í', 'ỉ', 'ĩ', 'ị'},
	'o': {'ò', 'ó', 'ỏ', 'õ', 'ọ'},
	'ô': {'ồ', 'ố', 'ổ', 'ỗ', 'ộ'},
	'ơ': {'ờ', 'ớ', 'ở', 'ỡ', 'ợ'},
	'u': {'ù', 'ú', 'ủ', 'ũ', 'ụ'},
	'ư': {'ừ', 'ứ', 'ử', 'ữ', 'ự'},
	'y': {'ỳ', 'ý', 'ỷ', 'ỹ', 'ỵ'},
}

// PlainVowels are the vowels that carry no modifier.
const PlainVowels = "aeiouy"

// StrokeLetters are letters that take a modifier but never a tone.
const StrokeLetters = "đĐ"

var toneTable = buildToneTable()

func buildToneTable() map[rune][5]rune {
	var t = make(map[rune][5]rune, 2*len(lowerTones))
	for base, toned := range lowerTones {
		t[base] = toned
		var upper [5]rune
		for i, r := range toned {
			upper[i] = unicode.ToUpper(r)
		}
		t[unicode.ToUpper(base)] = upper
	}
	return t
}

// AddTone returns base carrying tone t. Case follows base.
func AddTone(base rune, t Tone) (rune, bool) {
	if t == ToneNone {
		return base, true
	}
	toned, ok := toneTable[base]
	if !ok || t > ToneDot {
		return base, false
	}
	return toned[t-1], true
}

// IsVowel reports whether r is a vowel the tone table knows, in any case.
func IsVowel(r rune) bool {
	_, ok := toneTable[r]
	return ok
}

// IsModifiedVowel reports whether r is one of â ă ê ô ơ ư, in any case.
func IsModifiedVowel(r rune) bool {
	return IsVowel(r) && !isPlainVowel(r)
}

func isPlainVowel(r rune) bool {
	for _, v := range PlainVowels {
		if unicode.ToLower(r) == v {
			return true
		}
	}
	return false
}
