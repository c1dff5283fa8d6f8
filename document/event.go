// Package document describes edits to text buffers.
package document

import (
	"errors"
	"fmt"
)

// ErrRange is returned when an edit reaches past the end of a text.
var ErrRange = errors.New("replacement out of range")

// TextReplacedEvent describes the replacement of a subtext. Index and Length
// locate the replaced subtext in the old text and the replacing subtext in
// the new text. Offsets are in bytes.
type TextReplacedEvent struct {
	index   int
	length  int
	oldText string
	newText string
}

// NewTextReplacedEvent returns the event for replacing
// oldText[index:index+length] by newText[index:index+length].
func NewTextReplacedEvent(index, length int, oldText, newText string) (TextReplacedEvent, error) {
	if index < 0 || length < 0 {
		return TextReplacedEvent{}, fmt.Errorf("document: index %d length %d: %w", index, length, ErrRange)
	}
	if index > len(oldText) || index > len(newText) ||
		length > len(oldText)-index || length > len(newText)-index {
		return TextReplacedEvent{}, fmt.Errorf("document: %d bytes at %d in texts of %d and %d bytes: %w",
			length, index, len(oldText), len(newText), ErrRange)
	}
	return TextReplacedEvent{
		index:   index,
		length:  length,
		oldText: oldText,
		newText: newText,
	}, nil
}

func (e TextReplacedEvent) Index() int      { return e.index }
func (e TextReplacedEvent) Length() int     { return e.length }
func (e TextReplacedEvent) OldText() string { return e.oldText }
func (e TextReplacedEvent) NewText() string { return e.newText }

// Replaced returns the subtext that was removed from the old text.
func (e TextReplacedEvent) Replaced() string {
	return e.oldText[e.index : e.index+e.length]
}

// Replacement returns the subtext that took its place in the new text.
func (e TextReplacedEvent) Replacement() string {
	return e.newText[e.index : e.index+e.length]
}
