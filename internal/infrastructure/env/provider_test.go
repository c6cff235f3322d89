package env

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/application/port/mocks"
	"github.com/bnema/tabshell/internal/application/usecase"
)

func TestProvider_ConfiguredNameWins(t *testing.T) {
	remote := mocks.NewMockEnvironmentInfo(t)
	p := NewProvider("staging", "stg", remote)

	info, err := p.EnvInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Current environment: staging (stg)", info)
	assert.Equal(t, "staging", usecase.ParseEnvName(info))
}

func TestProvider_Remote(t *testing.T) {
	ctx := context.Background()
	remote := mocks.NewMockEnvironmentInfo(t)
	remote.EXPECT().EnvInfo(ctx).Return("Current environment: prod (p)", nil).Once()

	info, err := NewProvider("", "", remote).EnvInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "prod", usecase.ParseEnvName(info))
}

func TestProvider_RemoteFailure(t *testing.T) {
	ctx := context.Background()
	remote := mocks.NewMockEnvironmentInfo(t)
	remote.EXPECT().EnvInfo(ctx).Return("", errors.New("offline")).Once()

	_, err := NewProvider("", "", remote).EnvInfo(ctx)
	require.Error(t, err)
	assert.Equal(t, usecase.DefaultEnvName, usecase.ResolveEnvName(ctx, NewProvider("", "", nil)))
}

func TestProvider_NoSource(t *testing.T) {
	_, err := NewProvider("", "", nil).EnvInfo(context.Background())
	assert.ErrorIs(t, err, ErrNoSource)
}
