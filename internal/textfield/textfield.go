/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This software is licensed under the MIT license. For more information,
 * see <https://github.com/andodevel/telex-engine/blob/master/LICENSE>.
 */

// Package textfield holds a text buffer and caret and runs every typed
// keystroke through the Telex converter.
package textfield

import (
	"sync"

	"github.com/andodevel/telex-engine/telex"
)

// Callbacks are invoked after the field changes, outside the field's lock.
// Nil callbacks are skipped.
type Callbacks struct {
	OnChange func(text string, caret int)
	OnClear  func()
}

// Converter rewrites a buffer after an edit, see telex.Apply.
type Converter func(previous, current string, caret int) telex.Result

// Field is safe for concurrent use; edits are applied one at a time.
type Field struct {
	mu      sync.Mutex
	text    []rune
	caret   int
	cb      Callbacks
	convert Converter
}

func New(cb Callbacks) *Field {
	return NewWithConverter(cb, telex.Apply)
}

func NewWithConverter(cb Callbacks, convert Converter) *Field {
	return &Field{cb: cb, convert: convert}
}

func (f *Field) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return string(f.text)
}

func (f *Field) Caret() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.caret
}

func (f *Field) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.text)
}

// Type inserts r at the caret and converts the result.
func (f *Field) Type(r rune) {
	f.mu.Lock()
	var previous = string(f.text)
	var current = make([]rune, 0, len(f.text)+1)
	current = append(current, f.text[:f.caret]...)
	current = append(current, r)
	current = append(current, f.text[f.caret:]...)
	f.apply(previous, string(current), f.caret+1)
	text, caret := string(f.text), f.caret
	f.mu.Unlock()

	f.changed(text, caret)
}

// TypeString types s one rune at a time.
func (f *Field) TypeString(s string) {
	for _, r := range s {
		f.Type(r)
	}
}

// Paste inserts s at the caret as is.
func (f *Field) Paste(s string) {
	if s == "" {
		return
	}
	var ins = []rune(s)
	f.mu.Lock()
	var current = make([]rune, 0, len(f.text)+len(ins))
	current = append(current, f.text[:f.caret]...)
	current = append(current, ins...)
	current = append(current, f.text[f.caret:]...)
	f.text = current
	f.caret += len(ins)
	text, caret := string(f.text), f.caret
	f.mu.Unlock()

	f.changed(text, caret)
}

// Backspace removes the rune before the caret. It reports whether anything
// was removed.
func (f *Field) Backspace() bool {
	f.mu.Lock()
	if f.caret == 0 {
		f.mu.Unlock()
		return false
	}
	var previous = string(f.text)
	var current = make([]rune, 0, len(f.text)-1)
	current = append(current, f.text[:f.caret-1]...)
	current = append(current, f.text[f.caret:]...)
	f.apply(previous, string(current), f.caret-1)
	text, caret := string(f.text), f.caret
	f.mu.Unlock()

	f.changed(text, caret)
	return true
}

// MoveCaret places the caret at pos, clamped to the buffer.
func (f *Field) MoveCaret(pos int) {
	f.mu.Lock()
	f.caret = min(max(pos, 0), len(f.text))
	f.mu.Unlock()
}

func (f *Field) Clear() {
	f.mu.Lock()
	f.text = nil
	f.caret = 0
	f.mu.Unlock()

	if f.cb.OnClear != nil {
		f.cb.OnClear()
	}
}

// Commit returns the text and empties the field.
func (f *Field) Commit() string {
	var text = f.Text()
	f.Clear()
	return text
}

// apply must be called with f.mu held.
func (f *Field) apply(previous, current string, caret int) {
	var res = f.convert(previous, current, caret)
	f.text = []rune(res.Text)
	f.caret = telex.NewCaret(caret, res)
}

func (f *Field) changed(text string, caret int) {
	if f.cb.OnChange != nil {
		f.cb.OnChange(text, caret)
	}
}
