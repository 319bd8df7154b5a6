package engine

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eunmann/keystat/internal/logctx"
	"github.com/eunmann/keystat/pkg/datagen"
)

func benchmarkRun(b *testing.B, workers int) {
	data, err := datagen.Bytes(datagen.DefaultConfig(200_000))
	if err != nil {
		b.Fatal(err)
	}
	ctx := logctx.WithLogger(context.Background(), zerolog.Nop())

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Run(ctx, data, Config{Workers: workers}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunWorkers1(b *testing.B) { benchmarkRun(b, 1) }
func BenchmarkRunWorkers4(b *testing.B) { benchmarkRun(b, 4) }
func BenchmarkRunWorkers8(b *testing.B) { benchmarkRun(b, 8) }

func BenchmarkParseRecord(b *testing.B) {
	line := []byte("sensor_0042;-42.7")
	b.SetBytes(int64(len(line)))
	for i := 0; i < b.N; i++ {
		if _, _, err := ParseRecord(line); err != nil {
			b.Fatal(err)
		}
	}
}
