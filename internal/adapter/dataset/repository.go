// Package dataset implements port.DatasetRepository on top of a single
// Meta Ads Manager export file (CSV or XLSX). The cleaned dataset is
// memoized by content identity: the file bytes are hashed and the parsed
// snapshot is reused until the hash changes.
package dataset

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// FileRepository loads and caches one export file.
type FileRepository struct {
	path   string
	logger *slog.Logger

	mu     sync.Mutex
	size   int64
	mtime  time.Time
	sum    xxh3.Uint128
	cached *domain.Dataset
}

// NewFileRepository returns a repository reading the export at path.
func NewFileRepository(path string, logger *slog.Logger) *FileRepository {
	return &FileRepository{path: path, logger: logger}
}

// Load returns the cleaned dataset for the export file. An unchanged
// size and mtime short-circuits to the cached snapshot without touching
// the file content; otherwise the bytes are re-read and re-parsed only
// when their hash changes. Every failure yields an empty dataset and a
// *port.LoadError; a warning is logged at the point of detection.
func (r *FileRepository) Load(ctx context.Context) (*domain.Dataset, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		return r.fail(&port.LoadError{Path: r.path, Reason: "export file not found", Err: err})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cached != nil && info.Size() == r.size && info.ModTime().Equal(r.mtime) {
		return r.cached, nil
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return r.fail(&port.LoadError{Path: r.path, Reason: "export file not found", Err: err})
	}
	if len(raw) == 0 {
		return r.fail(&port.LoadError{Path: r.path, Reason: "export file is empty"})
	}

	sum := xxh3.Hash128(raw)
	if r.cached != nil && r.sum == sum {
		r.size = info.Size()
		r.mtime = info.ModTime()
		return r.cached, nil
	}

	rows, err := parseTable(r.path, raw)
	if err != nil {
		return r.fail(asLoadError(r.path, err))
	}

	records, err := normalize(r.path, rows)
	if err != nil {
		return r.fail(asLoadError(r.path, err))
	}

	ds := &domain.Dataset{
		ID:      uuid.NewString(),
		Source:  r.path,
		Records: records,
	}
	r.sum = sum
	r.size = info.Size()
	r.mtime = info.ModTime()
	r.cached = ds
	r.logger.Info("dataset loaded",
		slog.String("dataset_id", ds.ID),
		slog.String("source", r.path),
		slog.Int("rows", len(records)))
	return ds, nil
}

func (r *FileRepository) fail(lerr *port.LoadError) (*domain.Dataset, error) {
	r.logger.Warn("dataset load failed",
		slog.String("source", lerr.Path),
		slog.String("reason", lerr.Reason),
		slog.Any("error", lerr.Err))
	return &domain.Dataset{Source: r.path}, lerr
}

// asLoadError keeps typed load errors and wraps everything else (CSV or
// workbook parse failures) into one.
func asLoadError(path string, err error) *port.LoadError {
	var lerr *port.LoadError
	if errors.As(err, &lerr) {
		return lerr
	}
	return &port.LoadError{Path: path, Reason: "export file could not be parsed", Err: err}
}

// parseTable turns the raw file bytes into rows of cells. The format is
// chosen by file extension; anything that is not .xlsx is read as CSV.
func parseTable(path string, raw []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return parseXLSX(path, raw)
	default:
		return parseCSV(raw)
	}
}
