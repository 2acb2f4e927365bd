/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This software is licensed under the MIT license. For more information,
 * see <https://github.com/andodevel/telex-engine/blob/master/LICENSE>.
 */

package telex

import "unicode/utf8"

// WindowSize is the number of runes before the caret that rules may see.
const WindowSize = 10

// Result is the outcome of one edit. The caller moves its caret by
// CaretDelta, see NewCaret.
type Result struct {
	Text       string
	CaretDelta int
}

// Apply rewrites current after an edit that turned previous into current,
// with the caret at rune offset caret in current. Only edits that grow the
// buffer are considered; everything else, and any window no rule matches,
// is returned unchanged.
func Apply(previous, current string, caret int) Result {
	return telexRules.Apply(previous, current, caret)
}

func (t *RuleTable) Apply(previous, current string, caret int) Result {
	var unchanged = Result{Text: current}
	var n = utf8.RuneCountInString(current)
	if n <= utf8.RuneCountInString(previous) {
		return unchanged
	}

	caret = clamp(caret, 0, n)
	var caretOff = byteOffset(current, caret)
	var window = []rune(current[byteOffset(current, max(0, caret-WindowSize)):caretOff])
	m, ok := t.Select(window)
	if !ok {
		return unchanged
	}

	// splice by byte offset so the text around the match is kept as is
	var cut = byteOffset(current, caret-m.Rule.Length)
	return Result{
		Text:       current[:cut] + string(m.Replacement) + current[caretOff:],
		CaretDelta: len(m.Replacement) - m.Rule.Length,
	}
}

// NewCaret is where the caret belongs after r, given it was at caret in
// the text passed to Apply.
func NewCaret(caret int, r Result) int {
	return clamp(caret+r.CaretDelta, 0, utf8.RuneCountInString(r.Text))
}

// Convert types keystrokes one rune at a time at the end of an empty
// buffer and returns the final text.
func Convert(keystrokes string) string {
	var (
		text  string
		caret int
	)
	for _, r := range keystrokes {
		var next = text + string(r)
		var res = Apply(text, next, caret+1)
		caret = NewCaret(caret+1, res)
		text = res.Text
	}
	return text
}

// byteOffset returns the byte offset of the n-th rune of s. Invalid bytes
// count as one rune each, as in utf8.RuneCountInString.
func byteOffset(s string, n int) int {
	var off int
	for i := 0; i < n && off < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
