package bubbleboard

import (
	"slices"
	"sync"
)

// Board holds the canonical ordered record set and the current selection.
//
// It is the addressable state between the pipeline and the presentation
// layer: the presentation emits a record ID back into the board, and the
// selection survives refreshes because IDs are stable in source row order.
// Methods are safe for concurrent use; the server refreshes and selects
// while readers render.
type Board struct {
	mu       sync.RWMutex
	settings Settings
	records  []Record
	selected int // record ID, 0 when nothing is selected
}

// NewBoard returns an empty board for the given settings.
func NewBoard(settings Settings) *Board {
	return &Board{settings: settings}
}

// Settings returns the settings the board was built with.
func (b *Board) Settings() Settings { return b.settings }

// Refresh reloads the record set from the source. On error the previous
// record set is kept, so a transient source problem never blanks the board.
func (b *Board) Refresh() error {
	s := b.settings
	records, err := Load(s.SpreadsheetPath, s.SheetName, s.RequiredColumns)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = records
	if _, ok := b.find(b.selected); !ok {
		// The selected row is gone from the source, drop the selection.
		b.selected = 0
	}
	return nil
}

// Records returns a copy of the full canonical ordered record set.
func (b *Board) Records() []Record {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.records)
}

// View returns the subset of the record set passing the criteria, in
// canonical order.
func (b *Board) View(c Criteria) []Record {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Filter(b.records, c)
}

// Get returns the record with the given ID.
func (b *Board) Get(id int) (Record, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.find(id)
}

// Select marks the record with the given ID as the current detail selection.
// It reports false when no such record exists.
func (b *Board) Select(id int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.find(id); !ok {
		return false
	}
	b.selected = id
	return true
}

// ClearSelection drops the current selection.
func (b *Board) ClearSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selected = 0
}

// Selected returns the currently selected record, if any.
func (b *Board) Selected() (Record, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.find(b.selected)
}

// find returns the record with the given ID. Callers hold b.mu.
func (b *Board) find(id int) (Record, bool) {
	if id == 0 {
		return Record{}, false
	}
	for _, r := range b.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// FacetOptions are the selectable values for the filter controls.
type FacetOptions struct {
	Categories []string `json:"categories"`
	Statuses   []string `json:"statuses"`
	Priorities []int    `json:"priorities"`
}

// FacetOptions returns the distinct non-empty categories and statuses of the
// current record set, sorted, and the configured priority scale.
func (b *Board) FacetOptions() FacetOptions {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var opts FacetOptions
	for _, r := range b.records {
		if r.Category != "" && !slices.Contains(opts.Categories, r.Category) {
			opts.Categories = append(opts.Categories, r.Category)
		}
		if r.Status != "" && !slices.Contains(opts.Statuses, r.Status) {
			opts.Statuses = append(opts.Statuses, r.Status)
		}
	}
	slices.Sort(opts.Categories)
	slices.Sort(opts.Statuses)
	for p := b.settings.PriorityMin; p <= b.settings.PriorityMax; p++ {
		opts.Priorities = append(opts.Priorities, p)
	}
	return opts
}
