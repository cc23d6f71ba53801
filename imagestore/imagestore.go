// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package imagestore

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("invalid image name")

// Store persists uploaded images under generated names
type Store interface {
	Save(ctx context.Context, name string, data []byte, contentType string) error
	// Delete removes the image. A missing image is not an error.
	Delete(ctx context.Context, name string) error
	// URL is where a browser can fetch the image
	URL(name string) string
}

// NewFilename returns a random UUID name keeping the original extension,
// e.g. "a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11.jpg"
func NewFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	// Only keep extensions that are a plain ".xyz"
	if len(ext) > 10 || strings.ContainsAny(ext, `/\ `) {
		ext = ""
	}
	return uuid.New().String() + ext
}

// ValidName reports whether name is a bare file name safe to store or serve
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}
