package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-account-service/internal/logger"
)

// PicturesURLPrefix is the public URL prefix under which stored profile
// pictures are served. References returned by Save carry this prefix.
const PicturesURLPrefix = "/uploads/profiles/"

// profilePictureStorage is the filesystem implementation of
// [ProfilePictureStorage]. It persists uploaded profile images in a flat
// directory and addresses them by filename only: the reference stored on the
// user record is PicturesURLPrefix + filename, and Delete resolves that
// reference back by taking its base name. A caller can therefore never reach
// outside the configured directory.
type profilePictureStorage struct {
	dir    string
	logger *logger.Logger
}

// NewProfilePictureStorage constructs a [ProfilePictureStorage] rooted at
// dir, creating the directory if it does not exist.
func NewProfilePictureStorage(dir string, logger *logger.Logger) (ProfilePictureStorage, error) {
	if dir == "" {
		dir = "uploads/profiles"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating profile picture directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating profile picture storage")
	return &profilePictureStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save writes the uploaded image bytes to <dir>/<fileName> and returns the
// public reference to store on the user record. fileName is reduced to its
// base name before use.
func (p *profilePictureStorage) Save(ctx context.Context, fileName string, data io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	fileName = filepath.Base(fileName)
	if fileName == "." || fileName == string(filepath.Separator) || strings.TrimSpace(fileName) == "" {
		return "", errors.New("empty profile picture file name")
	}

	fullPath := filepath.Join(p.dir, fileName)
	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*profilePictureStorage.Save").Str("file", fullPath).Msg("error: creating picture file failed")
		return "", fmt.Errorf("error creating profile picture file: %w", err)
	}

	if _, err := io.Copy(file, data); err != nil {
		file.Close()
		os.Remove(fullPath)
		log.Err(err).Str("func", "*profilePictureStorage.Save").Str("file", fullPath).Msg("error: writing picture file failed")
		return "", fmt.Errorf("error writing profile picture file: %w", err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("error closing profile picture file: %w", err)
	}

	return PicturesURLPrefix + fileName, nil
}

// Delete removes the picture file the reference points at. A reference to a
// file that no longer exists is not an error: callers use Delete for
// best-effort cleanup and a missing file means the cleanup goal is met.
func (p *profilePictureStorage) Delete(ctx context.Context, reference string) error {
	log := logger.FromContext(ctx)

	fileName := path.Base(reference)
	if fileName == "." || fileName == "/" || fileName == "" {
		return errors.New("empty profile picture reference")
	}

	fullPath := filepath.Join(p.dir, fileName)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		log.Err(err).Str("func", "*profilePictureStorage.Delete").Str("file", fullPath).Msg("error: removing picture file failed")
		return fmt.Errorf("error removing profile picture file: %w", err)
	}

	return nil
}

// Dir returns the directory the pictures are stored in and served from.
func (p *profilePictureStorage) Dir() string {
	return p.dir
}
