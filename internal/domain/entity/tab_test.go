package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListOf(ids ...TabID) *TabList {
	tl := NewTabList()
	for _, id := range ids {
		tl.Add(NewTab(id, "https://example.com/"+string(id)))
	}
	return tl
}

func TestNewTabID(t *testing.T) {
	assert.Equal(t, TabID("tab-1"), NewTabID(1))
	assert.Equal(t, TabID("tab-42"), NewTabID(42))
}

func TestNewTab_StartsLoading(t *testing.T) {
	tab := NewTab("tab-1", "https://example.com")
	assert.Equal(t, TabLoading, tab.State)
	assert.Equal(t, LoadingTitle, tab.Title)
}

func TestTab_SetTitle(t *testing.T) {
	tab := NewTab("tab-1", "https://example.com")

	tab.SetTitle("Dashboard")
	assert.Equal(t, TabReady, tab.State)
	assert.Equal(t, "Dashboard", tab.Title)

	tab.SetTitle("")
	assert.Equal(t, "Dashboard", tab.Title, "empty title keeps previous one")

	tab.State = TabClosed
	tab.SetTitle("Late")
	assert.Equal(t, "Dashboard", tab.Title, "closed tabs ignore updates")
}

func TestTabList_AddActivatesFirst(t *testing.T) {
	tl := newListOf("a", "b")
	assert.Equal(t, TabID("a"), tl.ActiveTabID)
	assert.Equal(t, []TabID{"a", "b"}, tl.IDs())
}

func TestTabList_Remove(t *testing.T) {
	tl := newListOf("a", "b", "c")

	assert.Equal(t, 1, tl.Remove("b"))
	assert.Equal(t, []TabID{"a", "c"}, tl.IDs())
	assert.Equal(t, -1, tl.Remove("missing"))
}

func TestTabList_Move(t *testing.T) {
	tests := []struct {
		name   string
		id     TabID
		newPos int
		ok     bool
		want   []TabID
	}{
		{name: "move first to last", id: "a", newPos: 2, ok: true, want: []TabID{"b", "c", "a"}},
		{name: "move last to first", id: "c", newPos: 0, ok: true, want: []TabID{"c", "a", "b"}},
		{name: "out of range", id: "a", newPos: 3, ok: false, want: []TabID{"a", "b", "c"}},
		{name: "unknown id", id: "z", newPos: 0, ok: false, want: []TabID{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newListOf("a", "b", "c")
			assert.Equal(t, tt.ok, tl.Move(tt.id, tt.newPos))
			assert.Equal(t, tt.want, tl.IDs())
		})
	}
}

func TestTabList_Search(t *testing.T) {
	tl := newListOf("a", "b", "c")
	tl.Find("a").SetTitle("Orders Dashboard")
	tl.Find("b").SetTitle("Users")
	tl.Find("c").SetTitle("order history")

	got := tl.Search("ORDER")
	require.Len(t, got, 2)
	assert.Equal(t, TabID("a"), got[0].ID)
	assert.Equal(t, TabID("c"), got[1].ID)

	assert.Len(t, tl.Search(""), 3)
}

func TestTabList_Snapshot(t *testing.T) {
	tl := newListOf("a", "b")
	tl.ActiveTabID = "b"

	snap := tl.Snapshot()
	require.Len(t, snap, 2)
	assert.False(t, snap[0].Active)
	assert.True(t, snap[1].Active)
	assert.Equal(t, LoadingTitle, snap[0].Title)
}
