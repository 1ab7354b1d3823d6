package util

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/DobbiKov/translate-dir-lib/internal/fs"
)

// WriteJSON writes v as indented JSON to path atomically: the document is
// written to a temp file in the same directory and renamed over path.
func WriteJSON(fsys fs.FS, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	tmpFile, tmpPath, err := fsys.CreateTempFile(filepath.Dir(path), "tmp-*.json")
	if err != nil {
		return err
	}

	if _, err := tmpFile.Write(append(data, '\n')); err != nil {
		tmpFile.Close()
		fsys.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Close(); err != nil {
		fsys.Remove(tmpPath)
		return err
	}
	if err := fsys.Chmod(tmpPath, fs.FilePerm); err != nil {
		fsys.Remove(tmpPath)
		return err
	}
	if err := fsys.Rename(tmpPath, path); err != nil {
		fsys.Remove(tmpPath)
		return err
	}
	return nil
}

// ReadJSON reads a JSON file and unmarshals it into v.
func ReadJSON(fsys fs.FS, path string, v any) error {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// WorkerCount returns the number of workers for concurrent operations.
func WorkerCount() int {
	return runtime.NumCPU()
}

// Parallel runs fn for each input with at most workerLimit calls in flight.
// The first error cancels ctx for the remaining calls and is returned.
func Parallel[T any](ctx context.Context, inputs []T, workerLimit int, fn func(context.Context, T) error) error {
	if len(inputs) == 0 {
		return nil
	}
	if workerLimit < 1 {
		workerLimit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit)
	for _, in := range inputs {
		in := in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, in)
		})
	}
	return g.Wait()
}
