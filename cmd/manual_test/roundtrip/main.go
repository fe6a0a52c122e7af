package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/tuannm99/rowfile"
	"github.com/tuannm99/rowfile/internal"
)

// Manual round-trip harness: generate a table per config, serialize it to
// an artifact, read it back lazily and verify schema and rows match.
func main() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	configPath := flag.String("config", "", "Path to yaml harness config (optional)")
	flag.Parse()

	cfg := internal.DefaultHarnessConfig()
	if *configPath != "" {
		loaded, err := internal.LoadHarnessConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	var transform rowfile.Transform
	switch cfg.Compression.Algorithm {
	case "gzip":
		transform = rowfile.Gzip()
	case "zstd":
		transform = rowfile.Zstd()
	case "", "none":
	default:
		log.Fatalf("unknown compression algorithm %q", cfg.Compression.Algorithm)
	}

	if err := os.MkdirAll(cfg.Workdir, 0o755); err != nil {
		log.Fatalf("create workdir: %v", err)
	}
	path := filepath.Join(cfg.Workdir, cfg.Artifact)

	schema := rowfile.Schema{
		Cols: []rowfile.Column{
			{Name: "id", Type: rowfile.ColInt64, Nullable: false},
			{Name: "score", Type: rowfile.ColFloat64, Nullable: true},
			{Name: "tag", Type: rowfile.ColText, Nullable: true},
		},
	}

	slog.Info("generating table", "rows", cfg.Rows, "null_ratio", cfg.NullRatio)
	rng := rand.New(rand.NewSource(42))
	rows := make([]rowfile.Row, cfg.Rows)
	for i := range rows {
		row := rowfile.Row{int64(i), rng.Float64() * 100, fmt.Sprintf("tag-%d", i%97)}
		if rng.Float64() < cfg.NullRatio {
			row[1] = nil
		}
		if rng.Float64() < cfg.NullRatio {
			row[2] = nil
		}
		rows[i] = row
	}
	table := rowfile.NewMemTable(schema, rows)

	wopts := rowfile.WriteOptions{Compression: transform, CompressionLevel: cfg.Compression.Level}
	if err := rowfile.SerializeTableRows(path, table, wopts); err != nil {
		log.Fatalf("serialize: %v", err)
	}
	if info, err := os.Stat(path); err == nil {
		slog.Info("artifact written", "path", path, "bytes", info.Size())
	}

	seq, err := rowfile.DeserializeTableRows(path, rowfile.ReadOptions{Decompression: transform})
	if err != nil {
		log.Fatalf("deserialize: %v", err)
	}
	if !seq.Schema().Equal(schema) {
		log.Fatalf("schema mismatch: %+v", seq.Schema())
	}

	n := 0
	for {
		row, err := seq.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatalf("next (row %d): %v", n, err)
		}
		if !row.Equal(rows[n]) {
			log.Fatalf("row %d mismatch: got %v want %v", n, row, rows[n])
		}
		n++
	}
	if n != len(rows) {
		log.Fatalf("row count mismatch: got %d want %d", n, len(rows))
	}

	slog.Info("round trip ok", "rows", n)
}
