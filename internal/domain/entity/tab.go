package entity

import (
	"strconv"
	"strings"
	"time"
)

// TabID uniquely identifies a tab.
type TabID string

// LoadingTitle is shown until a tab's page reports a title.
const LoadingTitle = "Loading..."

// NewTabID formats the id for the n-th tab created in a process.
func NewTabID(n uint64) TabID {
	return TabID("tab-" + strconv.FormatUint(n, 10))
}

// TabState is the lifecycle state of a tab.
type TabState int

const (
	TabLoading TabState = iota
	TabReady
	TabClosed
)

func (s TabState) String() string {
	switch s {
	case TabLoading:
		return "loading"
	case TabReady:
		return "ready"
	case TabClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Tab is one logical browsing session in the shell's tab strip.
type Tab struct {
	ID        TabID
	URL       string // Last known navigation target
	Title     string
	State     TabState
	CreatedAt time.Time
}

// NewTab creates a tab in the Loading state.
func NewTab(id TabID, url string) *Tab {
	return &Tab{
		ID:        id,
		URL:       url,
		Title:     LoadingTitle,
		State:     TabLoading,
		CreatedAt: time.Now(),
	}
}

// SetTitle records a resolved title and marks the tab ready.
// Empty titles keep the previous one.
func (t *Tab) SetTitle(title string) {
	if t.State == TabClosed {
		return
	}
	if title != "" {
		t.Title = title
	}
	t.State = TabReady
}

// DisplayTitle returns the title, falling back to the URL.
func (t *Tab) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.URL
}

// TabList manages an ordered collection of tabs.
// Slice order is the visual left-to-right order.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the list.
func (tl *TabList) Add(tab *Tab) {
	tl.Tabs = append(tl.Tabs, tab)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// Remove removes a tab by ID and returns the index it occupied, or -1.
// The active pointer is left to the caller.
func (tl *TabList) Remove(id TabID) int {
	i := tl.IndexOf(id)
	if i < 0 {
		return -1
	}
	tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
	return i
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	if i := tl.IndexOf(id); i >= 0 {
		return tl.Tabs[i]
	}
	return nil
}

// IndexOf returns the position of id, or -1.
func (tl *TabList) IndexOf(id TabID) int {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// At returns the tab at index i, or nil when out of range.
func (tl *TabList) At(i int) *Tab {
	if i < 0 || i >= len(tl.Tabs) {
		return nil
	}
	return tl.Tabs[i]
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// Move removes the tab from its position and inserts it at newPos.
func (tl *TabList) Move(id TabID, newPos int) bool {
	if newPos < 0 || newPos >= len(tl.Tabs) {
		return false
	}
	oldPos := tl.IndexOf(id)
	if oldPos < 0 {
		return false
	}
	tab := tl.Tabs[oldPos]
	tl.Tabs = append(tl.Tabs[:oldPos], tl.Tabs[oldPos+1:]...)
	tl.Tabs = append(tl.Tabs[:newPos], append([]*Tab{tab}, tl.Tabs[newPos:]...)...)
	return true
}

// IDs returns the tab ids in order.
func (tl *TabList) IDs() []TabID {
	ids := make([]TabID, len(tl.Tabs))
	for i, tab := range tl.Tabs {
		ids[i] = tab.ID
	}
	return ids
}

// Search returns tabs whose title contains query, case-insensitively, in order.
func (tl *TabList) Search(query string) []*Tab {
	q := strings.ToLower(query)
	out := make([]*Tab, 0, len(tl.Tabs))
	for _, tab := range tl.Tabs {
		if strings.Contains(strings.ToLower(tab.DisplayTitle()), q) {
			out = append(out, tab)
		}
	}
	return out
}

// TabSummary is a read-only copy of a tab for observers.
type TabSummary struct {
	ID     TabID
	URL    string
	Title  string
	State  TabState
	Active bool
}

// Snapshot copies the list into summaries.
func (tl *TabList) Snapshot() []TabSummary {
	out := make([]TabSummary, len(tl.Tabs))
	for i, tab := range tl.Tabs {
		out[i] = TabSummary{
			ID:     tab.ID,
			URL:    tab.URL,
			Title:  tab.DisplayTitle(),
			State:  tab.State,
			Active: tab.ID == tl.ActiveTabID,
		}
	}
	return out
}
