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
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		current  string
		caret    int
		want     Result
	}{
		{"circumflex", "", "aa", 2, Result{"â", -1}},
		{"horn", "", "ow", 2, Result{"ơ", -1}},
		{"stroke", "", "dd", 2, Result{"đ", -1}},
		{"tone on plain vowel", "a", "as", 2, Result{"á", -1}},
		{"tone on modified vowel", "â", "âs", 2, Result{"ấ", -1}},
		{"revert circumflex", "â", "âa", 2, Result{"aa", 0}},
		{"revert horn", "ư", "ưw", 2, Result{"uw", 0}},
		{"revert upper breve", "Ă", "Ăw", 2, Result{"Aw", 0}},
		{"revert upper partner", "Â", "ÂA", 2, Result{"AA", 0}},
		{"tripled stroke", "dd", "ddd", 3, Result{"dd", -1}},
		{"tripled vowel", "oo", "ooo", 3, Result{"oo", -1}},
		{"repeated w", "aw", "aww", 3, Result{"aw", -1}},
		{"upper circumflex", "A", "AA", 2, Result{"Â", -1}},
		{"mixed case circumflex", "a", "aA", 2, Result{"â", -1}},
		{"upper tone", "A", "Af", 2, Result{"À", -1}},
		{"case from vowel not w", "A", "Aw", 2, Result{"Ă", -1}},
		{"lower vowel upper w", "u", "uW", 2, Result{"ư", -1}},
		{"case from first d", "D", "Dd", 2, Result{"Đ", -1}},
		{"upper tone key is literal", "a", "aS", 2, Result{"aS", 0}},
		{"no match", "x", "xy", 2, Result{"xy", 0}},
		{"middle of buffer", "cô gang", "cô gawng", 6, Result{"cô găng", -1}},
		{"window only sees caret tail", "aa", "aab", 3, Result{"aab", 0}},
		{"deletion", "abc", "ab", 2, Result{"ab", 0}},
		{"replacement shrinking", "âs", "a", 1, Result{"a", 0}},
		{"caret past end is clamped", "a", "as", 99, Result{"á", -1}},
		{"negative caret", "a", "as", -3, Result{"as", 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.previous, tt.current, tt.caret))
		})
	}
}

func TestApplyNoInsertionIsIdentity(t *testing.T) {
	for _, text := range []string{"", "aa", "âa", "ddd", "xin chào", "hello world"} {
		for caret := 0; caret <= len([]rune(text)); caret++ {
			assert.Equal(t, Result{Text: text}, Apply(text, text, caret), "%q at %d", text, caret)
		}
	}
}

func TestApplyDeletionBypass(t *testing.T) {
	tests := []struct{ previous, current string }{
		{"aaa", "aa"},
		{"cố gắng", "cố gắn"},
		{"dd", "d"},
		{"as", ""},
	}
	for _, tt := range tests {
		for caret := 0; caret <= len([]rune(tt.current)); caret++ {
			assert.Equal(t, tt.current, Apply(tt.previous, tt.current, caret).Text)
		}
	}
}

func TestApplyKeepsBytesOutsideMatch(t *testing.T) {
	assert.Equal(t, Result{Text: "xx\xffâ", CaretDelta: -1}, Apply("xx", "xx\xffaa", 5))
	assert.Equal(t, Result{Text: "\xfeá\xff", CaretDelta: -1}, Apply("\xfea\xff", "\xfeas\xff", 3))
}

func TestNewCaret(t *testing.T) {
	res := Apply("", "aa", 2)
	assert.Equal(t, 1, NewCaret(2, res))

	res = Apply("cô gang", "cô gawng", 6)
	assert.Equal(t, 5, NewCaret(6, res))

	assert.Equal(t, 0, NewCaret(0, Result{Text: "abc", CaretDelta: -1}))
	assert.Equal(t, 3, NewCaret(5, Result{Text: "abc"}))
}

func TestConvert(t *testing.T) {
	tests := []struct {
		keys string
		want string
	}{
		{"xin chafo", "xin chào"},
		{"coos gawsng", "cố gắng"},
		{"hojc taajp", "học tập"},
		{"Vieejt Nam", "Việt Nam"},
		{"tooo", "too"},
		{"toool", "tool"},
		{"ddi", "đi"},
		{"DDaf Nawxng", "Đà Nẵng"},
		{"nguwowfi", "người"},
		{"aaa", "aa"},
		{"aaaa", "aa"},
		{"aww", "aw"},
		{"ddd", "đd"},
		// no tone keystrokes, so nothing to rewrite
		{"xin chao", "xin chao"},
		{"hello", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.keys))
		})
	}
}

func BenchmarkApply(b *testing.B) {
	var previous = "Tieengs Vieejt cos daaus "
	var current = previous + "a"
	var caret = len([]rune(current))
	for i := 0; i < b.N; i++ {
		Apply(previous, current+"s", caret+1)
	}
}
