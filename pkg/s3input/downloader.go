package s3input

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/eunmann/keystat/internal/logctx"
	"github.com/eunmann/keystat/pkg/humanfmt"
)

// DownloadConfig configures the S3 Download Manager.
type DownloadConfig struct {
	// Concurrency is the number of concurrent download parts.
	// Default: NumCPU clamped to [4, 16].
	Concurrency int

	// PartSize is the size of each download part in bytes.
	// Default: 16MB.
	PartSize int64

	// TempDir is the directory for downloaded temp files.
	// If empty, os.TempDir() is used.
	TempDir string
}

// DefaultDownloadConfig returns defaults based on the current machine.
func DefaultDownloadConfig() DownloadConfig {
	concurrency := runtime.NumCPU()
	if concurrency < 4 {
		concurrency = 4
	}
	if concurrency > 16 {
		concurrency = 16
	}

	return DownloadConfig{
		Concurrency: concurrency,
		PartSize:    16 * 1024 * 1024,
	}
}

// DownloadResult describes a completed download.
type DownloadResult struct {
	// Path is the local file the object was written to.
	Path string

	// Bytes is the total bytes downloaded.
	Bytes int64

	// Duration is how long the download took.
	Duration time.Duration
}

// DownloadToFile downloads an S3 object to destPath using parallel ranged
// GETs.
func (c *Client) DownloadToFile(ctx context.Context, bucket, key, destPath string, cfg DownloadConfig) (*DownloadResult, error) {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultDownloadConfig().Concurrency
	}
	if cfg.PartSize <= 0 {
		cfg.PartSize = DefaultDownloadConfig().PartSize
	}

	start := time.Now()

	file, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("create destination file: %w", err)
	}
	defer file.Close()

	mgr := manager.NewDownloader(c.s3Client, func(d *manager.Downloader) {
		d.Concurrency = cfg.Concurrency
		d.PartSize = cfg.PartSize
	})

	n, err := mgr.Download(ctx, file, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		os.Remove(destPath)
		return nil, fmt.Errorf("download s3://%s/%s: %w", bucket, key, err)
	}

	return &DownloadResult{
		Path:     destPath,
		Bytes:    n,
		Duration: time.Since(start),
	}, nil
}

// FetchToTemp downloads the object named by uri to a temp file and returns
// its path together with a cleanup func that removes the file. The cleanup
// func is safe to call even when an error occurred mid-download.
func FetchToTemp(ctx context.Context, uri string, cfg DownloadConfig) (string, func(), error) {
	log := logctx.FromContext(ctx)

	bucket, key, err := ParseURI(uri)
	if err != nil {
		return "", func() {}, err
	}

	client, err := NewClient(ctx)
	if err != nil {
		return "", func() {}, err
	}

	tempDir := cfg.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	tempFile, err := os.CreateTemp(tempDir, "keystat-s3-*.tmp")
	if err != nil {
		return "", func() {}, fmt.Errorf("create temp file: %w", err)
	}
	path := tempFile.Name()
	tempFile.Close()
	cleanup := func() { os.Remove(path) }

	log.Debug().
		Str("bucket", bucket).
		Str("key", key).
		Str("temp_path", path).
		Msg("downloading S3 input")

	result, err := client.DownloadToFile(ctx, bucket, key, path, cfg)
	if err != nil {
		cleanup()
		return "", func() {}, err
	}

	log.Info().
		Str("uri", uri).
		Str("size", humanfmt.Bytes(result.Bytes)).
		Str("duration", humanfmt.Duration(result.Duration)).
		Str("throughput", humanfmt.Throughput(result.Bytes, result.Duration)).
		Msg("S3 input downloaded")

	return path, cleanup, nil
}
