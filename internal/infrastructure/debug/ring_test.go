package debug

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/domain/entity"
)

func info(i int) *entity.DebugInfo {
	return &entity.DebugInfo{RequestMethod: "GET", RequestURL: fmt.Sprintf("/base_api/%d", i), ResponseStatus: 200}
}

func TestRing_RecentNewestFirst(t *testing.T) {
	r := NewRing(3, false)
	ctx := context.Background()
	for i := 1; i <= 2; i++ {
		r.Record(ctx, info(i))
	}

	got := r.Recent(0)
	require.Len(t, got, 2)
	assert.Equal(t, "/base_api/2", got[0].Info.RequestURL)
	assert.Equal(t, "/base_api/1", got[1].Info.RequestURL)
	assert.NotEqual(t, got[0].ID, got[1].ID)
	assert.False(t, got[0].At.IsZero())
}

func TestRing_Wraps(t *testing.T) {
	r := NewRing(3, true)
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		r.Record(ctx, info(i))
	}

	assert.Equal(t, 3, r.Len())
	got := r.Recent(2)
	require.Len(t, got, 2)
	assert.Equal(t, "/base_api/5", got[0].Info.RequestURL)
	assert.Equal(t, "/base_api/4", got[1].Info.RequestURL)

	all := r.Recent(10)
	require.Len(t, all, 3)
	assert.Equal(t, "/base_api/3", all[2].Info.RequestURL)
}

func TestRing_IgnoresNil(t *testing.T) {
	r := NewRing(0, false)
	r.Record(context.Background(), nil)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Recent(0))
}
