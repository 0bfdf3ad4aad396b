package storage

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func TestFileStoreWrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	key, err := store.Write(context.Background(), "sub/flyer.png", []byte("data"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "sub/flyer.png" {
		t.Fatalf("key = %q", key)
	}
	data, err := os.ReadFile(filepath.Join(store.BasePath(), "sub", "flyer.png"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "data" {
		t.Fatalf("content = %q", data)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Write(context.Background(), "../escape.png", []byte("x")); err == nil {
		t.Fatalf("expected error for traversal key")
	}
}

func TestWriteTimestampedNaming(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	path, err := store.WriteTimestamped(context.Background(), "dalle3", 2, "png", []byte("img"))
	if err != nil {
		t.Fatalf("WriteTimestamped: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Fatalf("path should be absolute: %q", path)
	}
	name := filepath.Base(path)
	pattern := regexp.MustCompile(`^dalle3_\d{8}_\d{6}_2\.png$`)
	if !pattern.MatchString(name) {
		t.Fatalf("file name = %q, want prefix_timestamp_index.ext", name)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestWriteTimestampedDefaultsExtension(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	path, err := store.WriteTimestamped(context.Background(), "mock", 0, "", []byte("x"))
	if err != nil {
		t.Fatalf("WriteTimestamped: %v", err)
	}
	if filepath.Ext(path) != ".png" {
		t.Fatalf("extension = %q, want .png", filepath.Ext(path))
	}
}
