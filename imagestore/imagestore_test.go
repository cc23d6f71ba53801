// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package imagestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewFilename(t *testing.T) {
	testCases := []struct {
		original string
		ext      string
	}{
		{"photo.jpg", ".jpg"},
		{"PHOTO.JPEG", ".jpeg"},
		{"내 사진.png", ".png"},
		{"archive.tar.gz", ".gz"},
		{"noext", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.original, func(t *testing.T) {
			name := NewFilename(tc.original)
			if !strings.HasSuffix(name, tc.ext) {
				t.Errorf("Expected suffix %q, got %q", tc.ext, name)
			}
			if _, err := uuid.Parse(strings.TrimSuffix(name, tc.ext)); err != nil {
				t.Errorf("Expected UUID prefix in %q: %v", name, err)
			}
			if !ValidName(name) {
				t.Errorf("Generated name %q is not valid", name)
			}
		})
	}

	if NewFilename("a.jpg") == NewFilename("a.jpg") {
		t.Error("Expected distinct names for repeated uploads")
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"a.jpg", "1f0c.png", "x"}
	invalid := []string{"", ".", "..", "../a.jpg", "a/b.jpg", `a\b.jpg`, "/etc/passwd"}

	for _, n := range valid {
		if !ValidName(n) {
			t.Errorf("Expected %q to be valid", n)
		}
	}
	for _, n := range invalid {
		if ValidName(n) {
			t.Errorf("Expected %q to be invalid", n)
		}
	}
}

func TestLocalStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	ctx := context.Background()

	t.Run("save and read back", func(t *testing.T) {
		if err := store.Save(ctx, "a.jpg", []byte("img"), "image/jpeg"); err != nil {
			t.Fatalf("Save: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "a.jpg"))
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if string(data) != "img" {
			t.Errorf("Expected 'img', got %q", data)
		}
	})

	t.Run("save never overwrites", func(t *testing.T) {
		if err := store.Save(ctx, "a.jpg", []byte("other"), "image/jpeg"); err == nil {
			t.Error("Expected error saving over an existing image")
		}
	})

	t.Run("rejects path names", func(t *testing.T) {
		if err := store.Save(ctx, "../escape.jpg", []byte("x"), ""); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Expected ErrInvalidName, got %v", err)
		}
		if err := store.Delete(ctx, "../escape.jpg"); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		if err := store.Delete(ctx, "a.jpg"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "a.jpg")); !os.IsNotExist(err) {
			t.Error("Expected file to be removed")
		}
		if err := store.Delete(ctx, "a.jpg"); err != nil {
			t.Errorf("Second delete should be a no-op, got %v", err)
		}
	})

	t.Run("url", func(t *testing.T) {
		if got := store.URL("a.jpg"); got != "/uploads/a.jpg" {
			t.Errorf("Expected /uploads/a.jpg, got %s", got)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := store.Save(cctx, "b.jpg", []byte("x"), ""); err == nil {
			t.Error("Expected error for cancelled context")
		}
	})
}

func TestMinioStoreURL(t *testing.T) {
	store, err := NewMinioStore("localhost:9000", "key", "secret", "diary", "http://localhost:9000/", false)
	if err != nil {
		t.Fatalf("NewMinioStore: %v", err)
	}
	expected := "http://localhost:9000/diary/a.jpg"
	if got := store.URL("a.jpg"); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
	if err := store.Save(context.Background(), "../x", nil, ""); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Expected ErrInvalidName, got %v", err)
	}
}
