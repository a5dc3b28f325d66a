package board

import (
	"sync"
	"time"
)

// EntryKind distinguishes journal entry types.
type EntryKind string

const (
	EntrySelection EntryKind = "selection"
	EntryAction    EntryKind = "action"
)

// JournalEntry is one recorded control event.
type JournalEntry struct {
	Kind   EntryKind
	Time   time.Time
	Tool   Tool
	Color  Color
	Action Action
}

// Journal keeps the last N control events of a session in a ring buffer.
// It subscribes to a store like any other observer and is read-only for
// the rest of the application.
type Journal struct {
	mu      sync.Mutex
	size    int
	entries []JournalEntry
	next    int
	full    bool
}

// NewJournal returns a journal sized for the provided entry count.
func NewJournal(size int) *Journal {
	if size <= 0 {
		size = 1
	}
	return &Journal{
		size:    size,
		entries: make([]JournalEntry, size),
	}
}

// OnStateChange records a selection commit.
func (j *Journal) OnStateChange(change StateChange) {
	j.add(JournalEntry{
		Kind:  EntrySelection,
		Time:  change.Timestamp,
		Tool:  change.Tool,
		Color: change.Color,
	})
}

// OnAction records a dispatched action request.
func (j *Journal) OnAction(action Action) {
	j.add(JournalEntry{
		Kind:   EntryAction,
		Time:   time.Now(),
		Action: action,
	})
}

func (j *Journal) add(entry JournalEntry) {
	if j == nil {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries[j.next] = entry
	j.next++
	if j.next >= j.size {
		j.next = 0
		j.full = true
	}
}

// Snapshot returns the recorded entries in chronological order.
func (j *Journal) Snapshot() []JournalEntry {
	if j == nil {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.full {
		out := make([]JournalEntry, j.next)
		copy(out, j.entries[:j.next])
		return out
	}

	out := make([]JournalEntry, j.size)
	copy(out, j.entries[j.next:])
	copy(out[j.size-j.next:], j.entries[:j.next])
	return out
}

// Len reports how many entries are currently buffered.
func (j *Journal) Len() int {
	if j == nil {
		return 0
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.full {
		return j.size
	}
	return j.next
}
