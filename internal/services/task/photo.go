package task

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/jot/internal/models"
)

// ReadPhoto loads an image file for attachment to a task. It rejects files
// over models.MaxPhotoBytes before reading them and sniffs the content to
// make sure it is an image. I/O failures wrap ErrPhotoRead.
func ReadPhoto(ctx context.Context, path string) (*models.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPhotoRead, err)
	}

	path, err := expandHome(strings.TrimSpace(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPhotoRead, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPhotoRead, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPhotoRead, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrPhotoRead, path)
	}
	if info.Size() > models.MaxPhotoBytes {
		return nil, ErrPhotoTooLarge
	}

	// The file may grow between Stat and Read; never take more than the cap
	data, err := io.ReadAll(io.LimitReader(f, models.MaxPhotoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPhotoRead, err)
	}
	if len(data) > models.MaxPhotoBytes {
		return nil, ErrPhotoTooLarge
	}

	photo := models.NewPhoto(data)
	if !photo.IsImage() {
		return nil, ErrPhotoNotImage
	}
	return photo, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, rest), nil
}
