/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This software is licensed under the MIT license. For more information,
 * see <https://github.com/andodevel/telex-engine/blob/master/LICENSE>.
 */

package telex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestEncode(t *testing.T) {
	var s = Convert("Vieejt Nam")
	assert.Equal(t, s, Encode(UNICODE, s))
	assert.Equal(t, s, Encode("TCVN3", s))

	var compound = Encode(UNICODE_COMPOUND, s)
	assert.Equal(t, norm.NFD.String(s), compound)
	assert.Greater(t, len([]rune(compound)), len([]rune(s)))
	assert.Equal(t, s, norm.NFC.String(compound))
}

func TestIsValidCharset(t *testing.T) {
	assert.True(t, IsValidCharset(UNICODE))
	assert.True(t, IsValidCharset(UNICODE_COMPOUND))
	assert.False(t, IsValidCharset("VIQR"))
}
