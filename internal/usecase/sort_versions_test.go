package usecase

import (
	"context"
	"testing"

	"github.com/compozy/semver/pkg/semver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSortVersionsUseCase_Execute(t *testing.T) {
	unsorted := []string{"1.0.0", "1.0.0-beta.11", "1.0.0-alpha", "1.0.0-beta.2", "0.9.0"}
	t.Run("Should sort ascending", func(t *testing.T) {
		input := new(mockInputRepository)
		uc := &SortVersionsUseCase{Input: input, Logger: zap.NewNop()}
		ctx := context.Background()
		input.On("ReadVersions", ctx, unsorted).Return(unsorted, nil)
		vs, err := uc.Execute(ctx, SortRequest{Args: unsorted})
		require.NoError(t, err)
		assert.Equal(t, []string{"0.9.0", "1.0.0-alpha", "1.0.0-beta.2", "1.0.0-beta.11", "1.0.0"}, versionStrings(vs))
		input.AssertExpectations(t)
	})
	t.Run("Should sort descending", func(t *testing.T) {
		input := new(mockInputRepository)
		uc := &SortVersionsUseCase{Input: input, Logger: zap.NewNop()}
		ctx := context.Background()
		input.On("ReadVersions", ctx, unsorted).Return(unsorted, nil)
		vs, err := uc.Execute(ctx, SortRequest{Args: unsorted, Reverse: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"1.0.0", "1.0.0-beta.11", "1.0.0-beta.2", "1.0.0-alpha", "0.9.0"}, versionStrings(vs))
	})
	t.Run("Should keep input order of equal versions when descending", func(t *testing.T) {
		input := new(mockInputRepository)
		uc := &SortVersionsUseCase{Input: input, Logger: zap.NewNop()}
		ctx := context.Background()
		args := []string{"1.0.0+first", "2.0.0", "1.0.0+second"}
		input.On("ReadVersions", ctx, args).Return(args, nil)
		vs, err := uc.Execute(ctx, SortRequest{Args: args, Reverse: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"2.0.0", "1.0.0+first", "1.0.0+second"}, versionStrings(vs))
	})
	t.Run("Should fail on the first invalid version", func(t *testing.T) {
		input := new(mockInputRepository)
		uc := &SortVersionsUseCase{Input: input, Logger: zap.NewNop()}
		ctx := context.Background()
		args := []string{"1.0.0", "bogus"}
		input.On("ReadVersions", ctx, args).Return(args, nil)
		_, err := uc.Execute(ctx, SortRequest{Args: args})
		require.ErrorIs(t, err, semver.ErrInvalidVersion)
	})
	t.Run("Should fail without input", func(t *testing.T) {
		input := new(mockInputRepository)
		uc := &SortVersionsUseCase{Input: input, Logger: zap.NewNop()}
		ctx := context.Background()
		input.On("ReadVersions", ctx, []string(nil)).Return(nil, nil)
		_, err := uc.Execute(ctx, SortRequest{})
		require.ErrorIs(t, err, ErrNoVersions)
	})
}
