// Package assets persists uploaded product images under an app-private
// directory and removes them when their owning product goes away.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kuyka38/mijawharati-sub000/domain/shared"
	"github.com/kuyka38/mijawharati-sub000/pkg/logger"
)

const (
	// DefaultStoreTimeout bounds a single image copy. Sources are local
	// files or galleries, so anything slower than this is a stuck disk.
	DefaultStoreTimeout = 10 * time.Second

	copyChunkSize = 64 * 1024
)

// Store copies source images into a durable root directory and hands back
// stable references for embedding in product records. The root directory is
// injected so the store is testable without a real device sandbox.
type Store struct {
	root    string
	timeout time.Duration
}

// NewStore creates the asset store, ensuring the root directory exists.
func NewStore(root string, timeout time.Duration) (*Store, error) {
	if root == "" {
		return nil, shared.NewValidationError("asset", "root", "asset root directory cannot be empty")
	}
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, shared.NewIOError("asset", err)
	}
	return &Store{root: root, timeout: timeout}, nil
}

// Root returns the injected asset root directory.
func (s *Store) Root() string { return s.root }

// Save copies the image at sourcePath into the asset root under a unique,
// time-derived name and returns the stable destination path. The whole copy
// is bounded by the store timeout; any failure surfaces as an io domain
// error and leaves no partial destination file behind.
func (s *Store) Save(ctx context.Context, sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", shared.NewIOError("asset", err)
	}
	defer src.Close()

	return s.SaveFrom(ctx, src, filepath.Ext(sourcePath))
}

// SaveFrom copies image bytes from a reader, for callers that hold an
// already-open upload stream instead of a file path.
func (s *Store) SaveFrom(ctx context.Context, src io.Reader, ext string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	destPath := filepath.Join(s.root, s.uniqueName(ext))

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", shared.NewIOError("asset", err)
	}

	if err := copyContext(ctx, dest, src); err != nil {
		dest.Close()
		os.Remove(destPath)
		return "", shared.NewIOError("asset", err)
	}
	if err := dest.Close(); err != nil {
		os.Remove(destPath)
		return "", shared.NewIOError("asset", err)
	}

	logger.Debug("Image asset stored", zap.String("path", destPath))
	return destPath, nil
}

// Delete removes a stored asset, best effort. A missing path succeeds
// silently so the call is idempotent; any other failure is logged and
// swallowed because asset cleanup must never fail the surrounding product
// deletion.
func (s *Store) Delete(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Failed to delete image asset",
			zap.String("path", path),
			zap.Error(err))
	}
}

// uniqueName derives a destination file name from the current time, with a
// short random suffix against same-instant collisions.
func (s *Store) uniqueName(ext string) string {
	ext = sanitizeExt(ext)
	return fmt.Sprintf("IMG_%d_%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

func sanitizeExt(ext string) string {
	ext = strings.ToLower(filepath.Ext("x" + ext))
	if ext == "" || strings.ContainsAny(ext, `/\`) {
		return ".img"
	}
	return ext
}

// copyContext copies in chunks, checking for cancellation between chunks so
// a stuck source cannot hold the operation past its deadline.
func copyContext(ctx context.Context, dst io.Writer, src io.Reader) error {
	buf := make([]byte, copyChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, writeErr := dst.Write(buf[:n]); writeErr != nil {
				return writeErr
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return readErr
		}
	}
}
