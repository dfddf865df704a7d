// Package screen is the server-side model of the dashboard page. It
// implements admin.Renderer: the controller draws into it and the HTTP
// handlers render its snapshot as HTML.
package screen

import (
	"sync"

	"github.com/dalemusser/stemboard/internal/app/admin"
	metricsstore "github.com/dalemusser/stemboard/internal/app/store/metrics"
	"github.com/dalemusser/stemboard/internal/domain/models"
)

// Screen holds the current tables, counters, section visibility and dialog
// state. It is safe for concurrent use.
type Screen struct {
	mu       sync.RWMutex
	tables   map[models.Kind][]admin.RowView
	counters metricsstore.Counts
	visible  models.Section
	active   models.Section
	dialogs  map[string]bool
	resets   map[string]int
}

// Snapshot is a point-in-time copy of the screen.
type Snapshot struct {
	Tables   map[models.Kind][]admin.RowView
	Counters metricsstore.Counts
	Visible  models.Section
	Active   models.Section
	Open     []string
}

var _ admin.Renderer = (*Screen)(nil)

// New returns an empty screen with every section hidden.
func New() *Screen {
	return &Screen{
		tables:  make(map[models.Kind][]admin.RowView),
		dialogs: make(map[string]bool),
		resets:  make(map[string]int),
	}
}

func (s *Screen) RenderTable(kind models.Kind, rows []admin.RowView) {
	cp := make([]admin.RowView, len(rows))
	copy(cp, rows)

	s.mu.Lock()
	s.tables[kind] = cp
	s.mu.Unlock()
}

func (s *Screen) RenderCounters(c metricsstore.Counts) {
	s.mu.Lock()
	s.counters = c
	s.mu.Unlock()
}

func (s *Screen) ShowSection(sec models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !sec.Known() {
		s.visible = ""
		return
	}
	s.visible = sec
}

func (s *Screen) SetActiveLink(sec models.Section) {
	s.mu.Lock()
	s.active = sec
	s.mu.Unlock()
}

// OpenDialog shows the modal with element id.
func (s *Screen) OpenDialog(id string) {
	s.mu.Lock()
	s.dialogs[id] = true
	s.mu.Unlock()
}

func (s *Screen) CloseDialog(id string) {
	s.mu.Lock()
	delete(s.dialogs, id)
	s.mu.Unlock()
}

func (s *Screen) ResetForm(id string) {
	s.mu.Lock()
	s.resets[id]++
	s.mu.Unlock()
}

// Rows returns the rendered rows for kind.
func (s *Screen) Rows(kind models.Kind) []admin.RowView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.tables[kind]
	out := make([]admin.RowView, len(rows))
	copy(out, rows)
	return out
}

// Counters returns the last rendered counter values.
func (s *Screen) Counters() metricsstore.Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters
}

// Visible returns the only visible section, or "" when all are hidden.
func (s *Screen) Visible() models.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible
}

// Active returns the section whose navigation link is marked active.
func (s *Screen) Active() models.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// DialogOpen reports whether the modal with id is shown.
func (s *Screen) DialogOpen(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dialogs[id]
}

// FormResets reports how many times the form with id has been cleared.
func (s *Screen) FormResets(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resets[id]
}

// Snapshot copies the whole screen.
func (s *Screen) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Tables:   make(map[models.Kind][]admin.RowView, len(s.tables)),
		Counters: s.counters,
		Visible:  s.visible,
		Active:   s.active,
	}
	for k, rows := range s.tables {
		cp := make([]admin.RowView, len(rows))
		copy(cp, rows)
		snap.Tables[k] = cp
	}
	for id, open := range s.dialogs {
		if open {
			snap.Open = append(snap.Open, id)
		}
	}
	return snap
}
