package document

import (
	"fmt"
	"sync"
)

// Buffer is an overwrite-mode text buffer: every edit replaces as many bytes
// as it inserts, so each edit is fully described by a TextReplacedEvent.
// It is safe for concurrent use.
type Buffer struct {
	mu        sync.Mutex
	text      string
	listeners []func(TextReplacedEvent)
}

func NewBuffer(text string) *Buffer {
	return &Buffer{text: text}
}

func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// OnReplaced registers fn to receive every event, in edit order. Listeners
// run with the buffer locked and must not call back into it.
func (b *Buffer) OnReplaced(fn func(TextReplacedEvent)) {
	b.mu.Lock()
	b.listeners = append(b.listeners, fn)
	b.mu.Unlock()
}

// Overwrite replaces len(s) bytes starting at index with s.
func (b *Buffer) Overwrite(index int, s string) (TextReplacedEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index+len(s) > len(b.text) {
		return TextReplacedEvent{}, fmt.Errorf("document: overwrite %d bytes at %d of %d: %w",
			len(s), index, len(b.text), ErrRange)
	}
	newText := b.text[:index] + s + b.text[index+len(s):]
	ev, err := NewTextReplacedEvent(index, len(s), b.text, newText)
	if err != nil {
		return TextReplacedEvent{}, err
	}
	b.text = newText
	for _, fn := range b.listeners {
		fn(ev)
	}
	return ev, nil
}
