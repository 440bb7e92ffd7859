package search

import (
	"context"
	"testing"
	"time"

	"github.com/n0rdy/palindromes"
	"github.com/n0rdy/palindromes/configs"
	"github.com/n0rdy/palindromes/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// tests goroutines memory leaks
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var modes = []string{configs.SearchModeSequential, configs.SearchModeParallel, configs.SearchModePipeline}

func newSearcher(t *testing.T, mode string, timeout time.Duration) Searcher {
	t.Helper()
	s, err := New(configs.SearchConfig{Mode: mode, Workers: 3, Timeout: timeout}, nil)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s, err := New(configs.SearchConfig{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Sequential{}, s)

	s, err = New(configs.SearchConfig{Mode: configs.SearchModeParallel}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Parallel{}, s)
	assert.Greater(t, s.(*Parallel).workers, 0)

	s, err = New(configs.SearchConfig{Mode: configs.SearchModePipeline, Workers: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, s.(*Pipeline).workers)

	_, err = New(configs.SearchConfig{Mode: "quantum"}, nil)
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestSearch_KnownRanges(t *testing.T) {
	tests := []struct {
		name     string
		min, max uint64
		minValue uint64
		minPairs []types.FactorPair
		maxValue uint64
		maxPairs []types.FactorPair
	}{
		{
			name: "single digit", min: 1, max: 9,
			minValue: 1, minPairs: []types.FactorPair{{A: 1, B: 1}},
			maxValue: 9, maxPairs: []types.FactorPair{{A: 1, B: 9}, {A: 3, B: 3}},
		},
		{
			name: "double digits", min: 10, max: 99,
			minValue: 121, minPairs: []types.FactorPair{{A: 11, B: 11}},
			maxValue: 9009, maxPairs: []types.FactorPair{{A: 91, B: 99}},
		},
		{
			name: "triple digits", min: 100, max: 999,
			minValue: 10201, minPairs: []types.FactorPair{{A: 101, B: 101}},
			maxValue: 906609, maxPairs: []types.FactorPair{{A: 913, B: 993}},
		},
	}

	for _, mode := range modes {
		for _, tt := range tests {
			t.Run(mode+"/"+tt.name, func(t *testing.T) {
				res, err := newSearcher(t, mode, 0).Search(context.Background(), tt.min, tt.max)
				require.NoError(t, err)
				require.NotNil(t, res)

				assert.Equal(t, tt.minValue, res.Min.Value())
				assert.Equal(t, tt.minPairs, res.Min.Factors())
				assert.Equal(t, tt.maxValue, res.Max.Value())
				assert.Equal(t, tt.maxPairs, res.Max.Factors())
			})
		}
	}
}

func TestSearch_EmptyResult(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode, func(t *testing.T) {
			s := newSearcher(t, mode, 0)

			res, err := s.Search(context.Background(), 4, 4)
			require.NoError(t, err)
			assert.Nil(t, res)

			res, err = s.Search(context.Background(), 5, 3)
			require.NoError(t, err)
			assert.Nil(t, res)
		})
	}
}

func TestSearch_OutOfRange(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode, func(t *testing.T) {
			_, err := newSearcher(t, mode, 0).Search(context.Background(), 1, palindromes.MaxFactor+1)
			assert.ErrorIs(t, err, palindromes.ErrOutOfRange)
		})
	}
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, mode := range modes {
		t.Run(mode, func(t *testing.T) {
			res, err := newSearcher(t, mode, 0).Search(ctx, 1, 5000)
			assert.ErrorIs(t, err, context.Canceled)
			assert.Nil(t, res)
		})
	}
}

func TestSearch_CancelledWhileRunning(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			// far too many pairs to finish in time
			res, err := newSearcher(t, mode, 0).Search(ctx, 1, 1_000_000)
			assert.ErrorIs(t, err, context.DeadlineExceeded)
			assert.Nil(t, res)
		})
	}
}

func TestSearch_Timeout(t *testing.T) {
	for _, mode := range modes {
		t.Run(mode, func(t *testing.T) {
			res, err := newSearcher(t, mode, 20*time.Millisecond).Search(context.Background(), 1, 1_000_000)
			assert.ErrorIs(t, err, ErrTimeout)
			assert.Nil(t, res)
		})
	}
}

func TestSearch_StrategiesAgree(t *testing.T) {
	for _, r := range [][2]uint64{{0, 0}, {0, 30}, {7, 77}, {90, 130}, {1000, 1100}} {
		expected, err := palindromes.Products(r[0], r[1])
		require.NoError(t, err)

		for _, mode := range modes {
			got, err := newSearcher(t, mode, 0).Search(context.Background(), r[0], r[1])
			require.NoError(t, err)
			assert.Truef(t, expected.Equal(got), "mode %s, range %v", mode, r)
		}
	}
}
