// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package bench

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ajroetker/go-psort/psort"
	"github.com/ajroetker/go-psort/psort/contrib/seqsort"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Size = 30000
	cfg.Seed = 42
	cfg.Workers = 4
	return cfg
}

func TestRun(t *testing.T) {
	report, err := Run(context.Background(), smallConfig(), zaptest.NewLogger(t), nil)
	require.NoError(t, err)

	require.Len(t, report.Results, 4)
	wantOrder := []string{
		"Multi-Threaded Quick Sort",
		"Single-Threaded Quick Sort",
		"Multi-Threaded Heap Sort",
		"Single-Threaded Heap Sort",
	}
	for i, res := range report.Results {
		assert.Equal(t, wantOrder[i], res.Label)
		assert.Greater(t, int64(res.Duration), int64(0))
		assert.Equal(t, report.Unit.Value(res.Duration), res.Value)
	}
	assert.Equal(t, 30000, report.Size)
	assert.Equal(t, 4, report.Workers)
	assert.NotEmpty(t, report.Host.GOARCH)
	assert.GreaterOrEqual(t, report.AxisMax, 0.0)
}

func TestRunPoolAndParallelMerge(t *testing.T) {
	cfg := smallConfig()
	cfg.UsePool = true
	cfg.ParallelMerge = true
	cfg.Threshold = 1000

	report, err := Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	require.Len(t, report.Results, 4)
}

func TestRunDefaultWorkers(t *testing.T) {
	cfg := smallConfig()
	cfg.Workers = 0
	cfg.Size = 100

	report, err := Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, report.Host.GOMAXPROCS, report.Workers)
}

func TestRunEmpty(t *testing.T) {
	cfg := smallConfig()
	cfg.Size = 0

	report, err := Run(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	assert.Len(t, report.Results, 4)
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Workers = -1
	_, err := Run(context.Background(), cfg, nil, nil)
	assert.ErrorIs(t, err, psort.ErrInvalidWorkers)

	cfg = smallConfig()
	cfg.Size = -5
	_, err = Run(context.Background(), cfg, nil, nil)
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, smallConfig(), nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = Run(context.Background(), smallConfig(), nil, m)
	require.NoError(t, err)

	for _, alg := range seqsort.Algorithms {
		for _, mode := range []Mode{Sequential, Parallel} {
			ok := m.Runs.WithLabelValues(alg.String(), mode.String(), "ok")
			assert.Equal(t, 1.0, testutil.ToFloat64(ok), "%s/%s", alg, mode)
		}
	}
	assert.Equal(t, 4, testutil.CollectAndCount(m.Duration))

	// Registering twice on the same registry fails.
	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestSeries(t *testing.T) {
	report, err := Run(context.Background(), smallConfig(), nil, nil)
	require.NoError(t, err)

	var labels []string
	for _, r := range report.Series() {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []string{
		"Single-Threaded Quick Sort",
		"Multi-Threaded Quick Sort",
		"Single-Threaded Heap Sort",
		"Multi-Threaded Heap Sort",
	}, labels)
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	data := Generate(rng, 1000, 10000)
	require.Len(t, data, 1000)
	for _, v := range data {
		assert.True(t, v >= 0 && v <= 10000, "value %v out of range", v)
	}
}
