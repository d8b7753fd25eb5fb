// Package downloader fetches the dataset's raw input files over HTTP.
package downloader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cldf-datasets/antipassives/internal/config"
)

// maxFileSize caps a single download at 100 MB. The raw survey export is
// a few hundred kilobytes; anything near the cap is a wrong URL.
const maxFileSize = 100 * 1024 * 1024

// Downloader writes fetched files into a target directory.
type Downloader struct {
	log    *slog.Logger
	client *http.Client
	dir    string
}

// New creates a Downloader that stores files in dir.
func New(log *slog.Logger, dir string) *Downloader {
	return &Downloader{
		log:    log,
		client: &http.Client{Timeout: 2 * time.Minute},
		dir:    dir,
	}
}

// Fetch downloads every named file into the target directory. Each file is
// written to a temporary name and renamed into place, so an interrupted
// download never leaves a half-written raw file behind. An empty download
// list is an error: the raw inputs must either be configured or placed in
// the raw directory by hand.
func (d *Downloader) Fetch(ctx context.Context, downloads []config.Download) error {
	if len(downloads) == 0 {
		return fmt.Errorf("no downloads configured: add dataset.downloads entries or place the raw files manually")
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("create raw dir: %w", err)
	}

	for _, dl := range downloads {
		n, err := d.fetchOne(ctx, dl)
		if err != nil {
			return fmt.Errorf("download %s: %w", dl.Name, err)
		}
		d.log.Info("downloaded raw file",
			slog.String("name", dl.Name),
			slog.Int64("bytes", n))
	}
	return nil
}

func (d *Downloader) fetchOne(ctx context.Context, dl config.Download) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dl.URL, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(d.dir, dl.Name+".tmp*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(resp.Body, maxFileSize))
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("read body: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}

	if err := os.Rename(tmp.Name(), filepath.Join(d.dir, dl.Name)); err != nil {
		return 0, err
	}
	return n, nil
}
