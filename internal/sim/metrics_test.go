package sim

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestRunRecordsCounters(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(prev)
		_ = provider.Shutdown(context.Background())
	})

	totals, err := Run(context.Background(), Config{Games: 200, Target: 1500, Workers: 2, Seed: 42})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := map[string]int64{
		"farkle.sim.games": totals.Games,
		"farkle.sim.turns": totals.Turns,
		"farkle.sim.rolls": totals.Rolls,
		"farkle.sim.score": totals.Score,
	}
	got := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != instrumentationName {
			continue
		}
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s: unexpected data type %T", m.Name, m.Data)
			}
			if len(sum.DataPoints) != 1 {
				t.Fatalf("%s: expected 1 data point, got %d", m.Name, len(sum.DataPoints))
			}
			got[m.Name] = sum.DataPoints[0].Value
		}
	}

	for name, value := range want {
		if got[name] != value {
			t.Fatalf("%s = %d, want %d", name, got[name], value)
		}
	}
}
