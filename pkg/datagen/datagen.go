// Package datagen generates deterministic synthetic key;value inputs for
// tests and benchmarks.
//
// Every record matches the engine's grammar: a key drawn from a fixed pool,
// a ';', and a one-fractional-digit decimal in [-99.9, 99.9]. Output is a
// pure function of the Config, so fixtures and benchmark inputs are
// reproducible across runs and machines.
package datagen

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// Config controls synthetic input generation.
type Config struct {
	// Records is the total number of records to generate.
	Records int

	// Keys is the number of distinct keys to draw from.
	// Default: 1000.
	Keys int

	// Seed makes generation reproducible. 0 selects the default seed.
	Seed int64

	// Shards is the number of concurrently generated blocks. The output
	// depends on the shard count, so it is a fixed default rather than
	// NumCPU. Default: 8.
	Shards int
}

// DefaultConfig returns a reasonable configuration for the given record
// count.
func DefaultConfig(records int) Config {
	return Config{
		Records: records,
		Keys:    1000,
		Seed:    42,
		Shards:  8,
	}
}

func (c Config) withDefaults() Config {
	if c.Keys <= 0 {
		c.Keys = 1000
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	if c.Shards <= 0 {
		c.Shards = 8
	}
	if c.Shards > c.Records && c.Records > 0 {
		c.Shards = c.Records
	}
	return c
}

// Bytes generates the full input in memory. Shards are generated
// concurrently and concatenated in order.
func Bytes(cfg Config) ([]byte, error) {
	cfg = cfg.withDefaults()
	if cfg.Records <= 0 {
		return nil, nil
	}

	keys := makeKeys(cfg)
	shards := make([][]byte, cfg.Shards)
	per := cfg.Records / cfg.Shards

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i := range shards {
		count := per
		if i == cfg.Shards-1 {
			count = cfg.Records - per*(cfg.Shards-1)
		}
		g.Go(func() error {
			shards[i] = generateShard(keys, count, cfg.Seed+int64(i)+1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return bytes.Join(shards, nil), nil
}

// WriteFile generates the input and writes it to path.
func WriteFile(path string, cfg Config) error {
	data, err := Bytes(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// makeKeys builds the key pool. A few prefix families keep the keys from
// sorting trivially by generation order.
func makeKeys(cfg Config) []string {
	families := []string{"node", "probe", "rack", "sensor", "zone"}
	keys := make([]string, cfg.Keys)
	for i := range keys {
		keys[i] = fmt.Sprintf("%s_%04d", families[i%len(families)], i/len(families))
	}
	return keys
}

// generateShard produces count records with a shard-local rng so shards are
// independent of scheduling order.
func generateShard(keys []string, count int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	var buf bytes.Buffer
	buf.Grow(count * 16)

	for range count {
		key := keys[rng.Intn(len(keys))]
		tenths := int64(rng.Intn(1999) - 999) // [-99.9, 99.9]

		buf.WriteString(key)
		buf.WriteByte(';')
		if tenths < 0 {
			buf.WriteByte('-')
			tenths = -tenths
		}
		buf.WriteString(strconv.FormatInt(tenths/10, 10))
		buf.WriteByte('.')
		buf.WriteString(strconv.FormatInt(tenths%10, 10))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}
