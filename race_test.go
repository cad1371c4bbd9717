package wordscan

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstMatchWinnerStopsOthers(t *testing.T) {
	var cancelled atomic.Int32
	running := make(chan struct{})
	got, ok, err := firstMatch(context.Background(), testConfig(), "test", []string{"/slow", "/fast"},
		func(ctx context.Context, path string) (string, bool, error) {
			if path == "/fast" {
				// Report only once the loser is scanning.
				<-running
				return path, true, nil
			}
			close(running)
			<-ctx.Done()
			cancelled.Add(1)
			return "", false, nil
		})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/fast", got)
	assert.Equal(t, int32(1), cancelled.Load(), "loser is joined before returning")
}

func TestFirstMatchExactlyOneWinner(t *testing.T) {
	var files []string
	for i := range 32 {
		files = append(files, fmt.Sprint(i))
	}
	for range 20 {
		got, ok, err := firstMatch(context.Background(), testConfig(), "test", files,
			func(ctx context.Context, path string) (string, bool, error) {
				return path, true, nil
			})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Contains(t, files, got)
	}
}

func TestFirstMatchNone(t *testing.T) {
	got, ok, err := firstMatch(context.Background(), testConfig(), "test", []string{"/a", "/b"},
		func(ctx context.Context, path string) (int, bool, error) {
			return 42, false, nil
		})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, got)

	_, ok, err = firstMatch(context.Background(), testConfig(), "test", nil,
		func(ctx context.Context, path string) (int, bool, error) {
			return 0, true, nil
		})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFirstMatchErrorBeforeMatch(t *testing.T) {
	boom := errors.New("boom")
	_, ok, err := firstMatch(context.Background(), testConfig(), "test", []string{"/bad", "/good"},
		func(ctx context.Context, path string) (int, bool, error) {
			if path == "/bad" {
				return 0, false, boom
			}
			<-ctx.Done()
			return 0, false, nil
		})
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)
}

func TestFirstMatchErrorAfterMatch(t *testing.T) {
	matched := make(chan struct{})
	got, ok, err := firstMatch(context.Background(), testConfig(), "test", []string{"/good", "/bad"},
		func(ctx context.Context, path string) (int, bool, error) {
			if path == "/good" {
				defer close(matched)
				return 7, true, nil
			}
			<-matched
			return 0, false, errors.New("too late")
		})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, got)
}
