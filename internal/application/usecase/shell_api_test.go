package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShellAPI_Tabs(t *testing.T) {
	f := newRegistryFixture(t, TabRegistryConfig{})
	f.allowWindowTitles()
	api := NewShellAPI(f.registry, nil, f.host)
	ctx := context.Background()

	a, err := api.CreateTab(ctx, "https://app.internal/a")
	require.NoError(t, err)
	b, err := api.DuplicateTab(ctx, a)
	require.NoError(t, err)
	require.NoError(t, api.ActivateTab(ctx, a))
	assert.True(t, api.ReorderTab(ctx, b, a))
	assert.Equal(t, []entity.TabID{b, a}, f.registry.IDs())

	f.registry.UpdateTitle(ctx, b, "Copy")
	got := api.SearchTabs("copy")
	require.Len(t, got, 1)
	assert.Equal(t, b, got[0].ID)

	require.NoError(t, api.CloseTab(ctx, b))
	assert.Len(t, api.ListTabs(), 1)
	assert.ErrorIs(t, api.CloseTab(ctx, a), entity.ErrLastTab)
}

func TestShellAPI_OpenWindowDefaultsToActiveURL(t *testing.T) {
	f := newRegistryFixture(t, TabRegistryConfig{})
	f.allowWindowTitles()
	api := NewShellAPI(f.registry, nil, f.host)
	f.create(t, 1)

	f.host.EXPECT().CreateWindow(mock.Anything, "https://app.internal/", (*port.StorageSnapshot)(nil)).Return("window-2", nil).Once()
	snap := &port.StorageSnapshot{Local: map[string]string{"token": "abc"}}
	f.host.EXPECT().CreateWindow(mock.Anything, "https://docs.internal/", snap).Return("window-3", nil).Once()

	win, err := api.OpenWindow(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, port.WindowID("window-2"), win)

	win, err = api.OpenWindow(context.Background(), "https://docs.internal/", snap)
	require.NoError(t, err)
	assert.Equal(t, port.WindowID("window-3"), win)
}

func TestShellAPI_ForContextSharesZoom(t *testing.T) {
	f := newRegistryFixture(t, TabRegistryConfig{})
	f.allowWindowTitles()
	f.notifier.EXPECT().ShowZoom(mock.Anything, mock.Anything).Return().Maybe()
	f.host.EXPECT().SetNativeZoom(mock.Anything, 1.5).Return(nil).Once()
	zoom := NewZoomCoordinator(f.registry, f.host, f.notifier, f.sched, DefaultZoomConfig())
	api := NewShellAPI(f.registry, zoom, f.host)

	nested := api.ForContext()
	nested.Zoom().Set(context.Background(), 1.5)
	assert.Equal(t, 1.5, api.Zoom().Get())
	f.sched.Advance(time.Second)
}
