package chaos

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	tt := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "Valid", config: Config{Rate: 0.5, Faults: []error{errors.New("boom")}}, wantErr: nil},
		{name: "Zero Rate No Faults", config: Config{Rate: 0}, wantErr: nil},
		{name: "Rate Too Low", config: Config{Rate: -0.1}, wantErr: ErrInvalidRate},
		{name: "Rate Too High", config: Config{Rate: 1.1}, wantErr: ErrInvalidRate},
		{name: "Missing Faults", config: Config{Rate: 0.5}, wantErr: ErrEmptyFaultPool},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			policy, err := New(tc.config)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, policy)
		})
	}
}

func TestDeterminism(t *testing.T) {
	config := Config{
		Rate:   0.2,
		Faults: []error{errors.New("reset"), errors.New("timeout")},
		Seed:   789,
	}

	run := func() ([]error, Stats) {
		policy, err := New(config)
		require.NoError(t, err)

		faults := make([]error, 0, 100)
		for i := 0; i < 100; i++ {
			faults = append(faults, policy.Evaluate())
		}
		return faults, policy.Stats()
	}

	firstFaults, firstStats := run()
	secondFaults, secondStats := run()

	assert.Equal(t, firstStats, secondStats, "same seed must produce the same counters")
	assert.Equal(t, uint64(100), firstStats.TotalInvocations)
	require.Equal(t, len(firstFaults), len(secondFaults))
	for i := range firstFaults {
		assert.Equal(t, firstFaults[i], secondFaults[i], "trigger pattern diverged at dispatch %d", i)
	}

	triggered := uint64(0)
	for _, err := range firstFaults {
		if err != nil {
			triggered++
		}
	}
	assert.Equal(t, triggered, firstStats.ChaosTriggeredCount)
}

func TestRateBounds(t *testing.T) {
	t.Run("Rate Zero Never Triggers", func(t *testing.T) {
		policy, err := New(Config{Rate: 0, Seed: 1})
		require.NoError(t, err)

		for i := 0; i < 50; i++ {
			assert.NoError(t, policy.Evaluate())
		}
		assert.Equal(t, uint64(0), policy.Stats().ChaosTriggeredCount)
		assert.Equal(t, uint64(50), policy.Stats().TotalInvocations)
	})

	t.Run("Rate One Always Triggers", func(t *testing.T) {
		fault := errors.New("boom")
		policy, err := New(Config{Rate: 1, Faults: []error{fault}, Seed: 1})
		require.NoError(t, err)

		for i := 0; i < 50; i++ {
			assert.ErrorIs(t, policy.Evaluate(), fault)
		}
		assert.Equal(t, uint64(50), policy.Stats().ChaosTriggeredCount)
	})
}

func TestFaultSelection(t *testing.T) {
	pool := []error{errors.New("a"), errors.New("b"), errors.New("c")}
	policy, err := New(Config{Rate: 1, Faults: pool, Seed: 42})
	require.NoError(t, err)

	seen := map[error]bool{}
	for i := 0; i < 200; i++ {
		seen[policy.Evaluate()] = true
	}
	for _, fault := range pool {
		assert.True(t, seen[fault], "expected fault %v to be selected at least once", fault)
	}
}

func TestDelay(t *testing.T) {
	policy, err := New(Config{Rate: 0, Delay: 20 * time.Millisecond, Seed: 1})
	require.NoError(t, err)

	start := time.Now()
	require.NoError(t, policy.Evaluate())
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestProfile(t *testing.T) {
	t.Run("Parse", func(t *testing.T) {
		cfg, err := ParseProfile([]byte("rate: 0.2\ndelay_ms: 5\nseed: 789\nfaults:\n  - \"connection reset\"\n  - \"deadline exceeded\"\n"))
		require.NoError(t, err)

		assert.Equal(t, 0.2, cfg.Rate)
		assert.Equal(t, 5*time.Millisecond, cfg.Delay)
		assert.Equal(t, int64(789), cfg.Seed)
		require.Len(t, cfg.Faults, 2)
		assert.Equal(t, "connection reset", cfg.Faults[0].Error())
	})

	t.Run("Parse Invalid YAML", func(t *testing.T) {
		_, err := ParseProfile([]byte("rate: [not a number"))
		require.Error(t, err)
	})

	t.Run("Load From Disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rate: 1\nseed: 7\nfaults: [\"boom\"]\n"), 0o600))

		cfg, err := LoadProfile(path)
		require.NoError(t, err)

		policy, err := New(cfg)
		require.NoError(t, err)
		assert.EqualError(t, policy.Evaluate(), "boom")
	})

	t.Run("Load Missing File", func(t *testing.T) {
		_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("Profile Determinism", func(t *testing.T) {
		raw := []byte("rate: 0.5\nseed: 99\nfaults: [\"x\"]\n")

		count := func() uint64 {
			cfg, err := ParseProfile(raw)
			require.NoError(t, err)
			policy, err := New(cfg)
			require.NoError(t, err)
			for i := 0; i < 100; i++ {
				_ = policy.Evaluate()
			}
			return policy.Stats().ChaosTriggeredCount
		}

		assert.Equal(t, count(), count())
	})
}
