// Package session keeps the CLI dashboard view state: the selected tab,
// the mood filter, the search query and the current page of entries.
// Nothing here is persisted.
package session

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/moodlog/internal/client/models"
)

const DefaultPageSize = 5

const FilterAll = "all"

// State is the view over the entries of the current tab.
type State struct {
	tab      string
	entries  []*models.Entry
	filter   string
	query    string
	page     int
	pageSize int
	selected int64
}

// New returns a State on the thoughts tab, page 1, with no filter.
// A non-positive pageSize falls back to DefaultPageSize.
func New(pageSize int) *State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &State{
		tab:      models.TypeThoughts,
		filter:   FilterAll,
		page:     1,
		pageSize: pageSize,
	}
}

func (s *State) Tab() string     { return s.tab }
func (s *State) Filter() string  { return s.filter }
func (s *State) Query() string   { return s.query }
func (s *State) Page() int       { return s.page }
func (s *State) Selected() int64 { return s.selected }
func (s *State) Len() int        { return len(s.entries) }

// SetTab switches to another entry type. The loaded entries belong to the
// previous tab and are dropped.
func (s *State) SetTab(tab string) error {
	if !models.ValidType(tab) {
		return fmt.Errorf("unknown tab %q", tab)
	}
	if tab != s.tab {
		s.tab = tab
		s.entries = nil
		s.selected = 0
	}
	s.page = 1
	return nil
}

// SetFilter sets the mood filter: "all" or one of the moods.
func (s *State) SetFilter(filter string) error {
	filter = strings.ToLower(filter)
	if filter != FilterAll && !models.ValidMood(filter) {
		return fmt.Errorf("unknown mood filter %q", filter)
	}
	s.filter = filter
	s.page = 1
	return nil
}

// SetQuery sets the content search. Matching ignores case.
func (s *State) SetQuery(q string) {
	s.query = strings.TrimSpace(q)
	s.page = 1
}

// Select marks the entry with id as selected. It reports false when the
// entry is not loaded.
func (s *State) Select(id int64) bool {
	if s.find(id) < 0 {
		return false
	}
	s.selected = id
	return true
}

// SelectedEntry returns the selected entry or nil.
func (s *State) SelectedEntry() *models.Entry {
	if i := s.find(s.selected); i >= 0 {
		return s.entries[i]
	}
	return nil
}

// Load replaces the entries with a fresh list from the server.
func (s *State) Load(entries []*models.Entry) {
	s.entries = append([]*models.Entry(nil), entries...)
	if s.find(s.selected) < 0 {
		s.selected = 0
	}
	s.clampPage()
}

// Prepend adds a newly created entry at the top of the list.
func (s *State) Prepend(e *models.Entry) {
	s.entries = append([]*models.Entry{e}, s.entries...)
}

// Replace swaps the entry with the same id for e.
func (s *State) Replace(e *models.Entry) {
	if i := s.find(e.ID); i >= 0 {
		s.entries[i] = e
	}
}

// Remove drops the entry with id.
func (s *State) Remove(id int64) {
	i := s.find(id)
	if i < 0 {
		return
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	if s.selected == id {
		s.selected = 0
	}
	s.clampPage()
}

// Clear drops every entry and returns to page 1.
func (s *State) Clear() {
	s.entries = nil
	s.selected = 0
	s.page = 1
}

func (s *State) find(id int64) int {
	if id == 0 {
		return -1
	}
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Filtered returns the entries passing the mood filter and the search.
func (s *State) Filtered() []*models.Entry {
	out := make([]*models.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if s.filter != FilterAll && e.Mood != s.filter {
			continue
		}
		if !e.Matches(s.query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// TotalPages is at least 1.
func (s *State) TotalPages() int {
	n := len(s.Filtered())
	if n == 0 {
		return 1
	}
	return (n + s.pageSize - 1) / s.pageSize
}

// Visible returns the filtered entries of the current page.
func (s *State) Visible() []*models.Entry {
	items := s.Filtered()
	start := (s.page - 1) * s.pageSize
	if start >= len(items) {
		return []*models.Entry{}
	}
	end := start + s.pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// NextPage moves forward. It reports false on the last page.
func (s *State) NextPage() bool {
	if s.page >= s.TotalPages() {
		return false
	}
	s.page++
	return true
}

// PrevPage moves back. It reports false on the first page.
func (s *State) PrevPage() bool {
	if s.page <= 1 {
		return false
	}
	s.page--
	return true
}

// GoToPage jumps to page n when it exists.
func (s *State) GoToPage(n int) bool {
	if n < 1 || n > s.TotalPages() {
		return false
	}
	s.page = n
	return true
}

func (s *State) clampPage() {
	if total := s.TotalPages(); s.page > total {
		s.page = total
	}
	if s.page < 1 {
		s.page = 1
	}
}
