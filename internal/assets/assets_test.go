package assets

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func writeAsset(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestResolveOrder(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeAsset(t, first, "pad.obj", "first")
	writeAsset(t, second, "pad.obj", "second")
	writeAsset(t, second, "terrain.obj", "terrain")

	m := NewManager(first, second)

	path, err := m.Resolve("pad.obj")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if path != filepath.Join(first, "pad.obj") {
		t.Errorf("expected first dir to win, got %s", path)
	}

	path, err = m.Resolve("terrain.obj")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if path != filepath.Join(second, "terrain.obj") {
		t.Errorf("expected fallback to second dir, got %s", path)
	}

	if _, err := m.Resolve("missing.obj"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveAbsolute(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "ship.mesh", "x")

	m := NewManager()
	abs := filepath.Join(dir, "ship.mesh")
	if path, err := m.Resolve(abs); err != nil || path != abs {
		t.Errorf("Resolve(%s) = %s, %v", abs, path, err)
	}
	if _, err := m.Resolve(filepath.Join(dir, "nope.mesh")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadCaches(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "engine.wav", "RIFF")
	m := NewManager(dir)

	for i := 0; i < 3; i++ {
		data, err := m.Load("engine.wav")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if string(data) != "RIFF" {
			t.Errorf("unexpected content %q", data)
		}
	}

	hits, misses := m.Cache().Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("expected 2 hits / 1 miss, got %d / %d", hits, misses)
	}

	// Cached bytes survive the file changing until invalidated.
	writeAsset(t, dir, "engine.wav", "WAVE")
	if data, _ := m.Load("engine.wav"); string(data) != "RIFF" {
		t.Errorf("expected cached content, got %q", data)
	}
	m.Invalidate("engine.wav")
	if data, _ := m.Load("engine.wav"); string(data) != "WAVE" {
		t.Errorf("expected fresh content, got %q", data)
	}

	m.Close()
	if m.Cache().Len() != 0 {
		t.Error("Close should empty the cache")
	}
}

func TestAddDir(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "white.png", "png")

	m := NewManager()
	if _, err := m.Load("white.png"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before AddDir, got %v", err)
	}
	m.AddDir(dir)
	if _, err := m.Load("white.png"); err != nil {
		t.Errorf("Load after AddDir failed: %v", err)
	}
	if len(m.Dirs()) != 1 {
		t.Errorf("expected 1 dir, got %v", m.Dirs())
	}
}

func TestConcurrentLoad(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "a.mesh", "a")
	m := NewManager(dir)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.Load("a.mesh"); err != nil {
				t.Errorf("Load failed: %v", err)
			}
		}()
	}
	wg.Wait()

	hits, misses := m.Cache().Stats()
	if hits+misses != 16 {
		t.Errorf("expected 16 lookups, got %d", hits+misses)
	}
}
