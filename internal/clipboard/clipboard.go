package clipboard

import (
	"errors"

	"github.com/lbaumann/ferry/internal/listing"
)

// Mode says whether a pending paste duplicates or moves its entries.
type Mode int

const (
	ModeNone Mode = iota
	ModeCopy
	ModeCut
)

func (m Mode) String() string {
	switch m {
	case ModeCopy:
		return "copied"
	case ModeCut:
		return "cut"
	default:
		return "empty"
	}
}

// ErrNothingToStash is returned when Stash is called with no entries.
var ErrNothingToStash = errors.New("nothing to stash")

// Clipboard holds a snapshot of entries taken at copy/cut time plus the
// operation mode. Paste consumes it under cut mode only.
type Clipboard struct {
	entries []listing.Entry
	mode    Mode
}

func New() *Clipboard {
	return &Clipboard{}
}

// Stash replaces the prior contents and mode unconditionally. An empty
// snapshot is rejected so a paste can never silently do nothing.
func (c *Clipboard) Stash(entries []listing.Entry, mode Mode) error {
	if len(entries) == 0 {
		return ErrNothingToStash
	}
	c.entries = append([]listing.Entry(nil), entries...)
	c.mode = mode
	return nil
}

// Take reads the contents without clearing them; repeated copy-pastes rely
// on this.
func (c *Clipboard) Take() ([]listing.Entry, Mode) {
	return c.entries, c.mode
}

func (c *Clipboard) Clear() {
	c.entries = nil
	c.mode = ModeNone
}

func (c *Clipboard) Len() int {
	return len(c.entries)
}

func (c *Clipboard) Mode() Mode {
	return c.mode
}
