// Package navigation decides which page section is active for a given scroll
// position.
package navigation

import (
	"errors"
	"strings"
	"sync"
)

// DefaultHeaderOffset is the height, in pixels, of the fixed header.
const DefaultHeaderOffset = 100

// DefaultSections are the page sections in document order.
var DefaultSections = []Section{
	{ID: "hero", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "timeline", Label: "Experience"},
	{ID: "skills", Label: "Skills"},
	{ID: "projects", Label: "Projects"},
	{ID: "certifications", Label: "Certifications"},
}

var ErrNoSections = errors.New("navigation needs at least one section")

type Section struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Tracker holds the active section for one page view. Once detached it
// ignores further observations.
type Tracker struct {
	mu           sync.RWMutex
	sections     []Section
	headerOffset float64
	active       string
	detached     bool
}

func NewTracker(sections []Section, headerOffset float64) (*Tracker, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	s := make([]Section, len(sections))
	copy(s, sections)
	return &Tracker{
		sections:     s,
		headerOffset: headerOffset,
		active:       s[0].ID,
	}, nil
}

// Observe records a scroll position. tops maps a section id to its offset from
// the top of the document; sections without an entry are not on the page.
// The active section becomes the last one, in list order, whose top is at or
// above scrollY+headerOffset. If none qualifies the active section is kept.
func (t *Tracker) Observe(scrollY float64, tops map[string]float64) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.detached {
		return t.active
	}
	if id, ok := ActiveAt(t.sections, t.headerOffset, scrollY, tops); ok {
		t.active = id
	}
	return t.active
}

// ActiveAt applies the tracking rule without any state.
func ActiveAt(sections []Section, headerOffset, scrollY float64, tops map[string]float64) (string, bool) {
	mark := scrollY + headerOffset
	found := ""
	for _, s := range sections {
		top, ok := tops[s.ID]
		if ok && top <= mark {
			found = s.ID
		}
	}
	return found, found != ""
}

func (t *Tracker) Active() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active
}

// Detach stops the tracker. It is safe to call more than once.
func (t *Tracker) Detach() {
	t.mu.Lock()
	t.detached = true
	t.mu.Unlock()
}

func (t *Tracker) Detached() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.detached
}

func (t *Tracker) Sections() []Section {
	out := make([]Section, len(t.sections))
	copy(out, t.sections)
	return out
}

func (t *Tracker) HeaderOffset() float64 { return t.headerOffset }

// ResolveSection maps "#about" or "about" to a known section id.
func (t *Tracker) ResolveSection(hash string) (string, bool) {
	id := strings.TrimPrefix(strings.TrimSpace(hash), "#")
	for _, s := range t.sections {
		if s.ID == id {
			return id, true
		}
	}
	return "", false
}
