/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This software is licensed under the MIT license. For more information,
 * see <https://github.com/andodevel/telex-engine/blob/master/LICENSE>.
 */

package telex

import "golang.org/x/text/unicode/norm"

const (
	UNICODE          = "Unicode"
	UNICODE_COMPOUND = "Unicode Compound"
)

// Encode converts engine output to the named charset. Unknown charsets
// get the text as produced, which is precomposed Unicode.
func Encode(charsetName string, input string) string {
	switch charsetName {
	case UNICODE_COMPOUND:
		return norm.NFD.String(input)
	}
	return input
}

func GetCharsetNames() []string {
	return []string{UNICODE, UNICODE_COMPOUND}
}

func IsValidCharset(charsetName string) bool {
	for _, cs := range GetCharsetNames() {
		if cs == charsetName {
			return true
		}
	}
	return false
}
