// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"

	transform "github.com/gogpu/gg-transform"
)

func imageFactory(size transform.Size) (transform.DrawTarget, error) {
	return NewImageTarget(size.Width, size.Height), nil
}

// TestRegistryRegister tests backend registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	factory := imageFactory

	r.Register("test", 50, factory, nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}

	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
	if !entry.Available() {
		t.Error("backend should be available (nil Available func)")
	}
}

// TestRegistryUnregister tests backend removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()

	r.Register("temp", 10, imageFactory, nil)

	_, ok := r.Get("temp")
	if !ok {
		t.Fatal("backend should exist before unregister")
	}

	r.Unregister("temp")

	_, ok = r.Get("temp")
	if ok {
		t.Error("backend should not exist after unregister")
	}
}

// TestRegistryList tests listing backends.
func TestRegistryList(t *testing.T) {
	r := NewRegistry()

	r.Register("low", 10, imageFactory, nil)

	r.Register("high", 100, imageFactory, nil)

	r.Register("mid", 50, imageFactory, nil)

	list := r.List()

	if len(list) != 3 {
		t.Fatalf("expected 3 backends, got %d", len(list))
	}

	// Should be sorted by priority (highest first)
	if list[0] != "high" {
		t.Errorf("first should be high (priority 100), got %s", list[0])
	}
	if list[1] != "mid" {
		t.Errorf("second should be mid (priority 50), got %s", list[1])
	}
	if list[2] != "low" {
		t.Errorf("third should be low (priority 10), got %s", list[2])
	}
}

// TestRegistryAvailable tests filtering by availability.
func TestRegistryAvailable(t *testing.T) {
	r := NewRegistry()

	r.Register("available", 100, imageFactory, func() bool { return true })

	r.Register("unavailable", 200, imageFactory, func() bool { return false })

	available := r.Available()

	if len(available) != 1 {
		t.Fatalf("expected 1 available backend, got %d", len(available))
	}

	if available[0] != "available" {
		t.Errorf("expected 'available', got %s", available[0])
	}
}

// TestRegistryNewTarget tests creating surfaces via registry.
func TestRegistryNewTarget(t *testing.T) {
	r := NewRegistry()

	r.Register("test", 50, imageFactory, nil)

	s, err := r.NewTarget(transform.Sz(100, 100))
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}

	if s.Size() != transform.Sz(100, 100) {
		t.Errorf("size = %v, want 100x100", s.Size())
	}
}

// TestRegistryNewTargetByName tests creating named surfaces.
func TestRegistryNewTargetByName(t *testing.T) {
	r := NewRegistry()

	r.Register("specific", 50, imageFactory, nil)

	s, err := r.NewTargetByName("specific", transform.Sz(50, 50))
	if err != nil {
		t.Fatalf("NewTargetByName failed: %v", err)
	}

	if s.Size().Width != 50 {
		t.Errorf("Width = %d, want 50", s.Size().Width)
	}
}

// TestRegistryNewTargetByNameNotFound tests error for unknown backend.
func TestRegistryNewTargetByNameNotFound(t *testing.T) {
	r := NewRegistry()

	_, err := r.NewTargetByName("nonexistent", transform.Sz(100, 100))
	if err == nil {
		t.Fatal("expected error for nonexistent backend")
	}

	var notFound *BackendNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("expected BackendNotFoundError, got %T", err)
	}

	if notFound.Name != "nonexistent" {
		t.Errorf("error name = %s, want nonexistent", notFound.Name)
	}
}

// TestRegistryNewTargetByNameUnavailable tests error for unavailable backend.
func TestRegistryNewTargetByNameUnavailable(t *testing.T) {
	r := NewRegistry()

	r.Register("unavailable", 50, imageFactory, func() bool { return false })

	_, err := r.NewTargetByName("unavailable", transform.Sz(100, 100))
	if err == nil {
		t.Fatal("expected error for unavailable backend")
	}

	var unavailable *BackendUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("expected BackendUnavailableError, got %T", err)
	}
}

// TestRegistryNoBackend tests error when no backends available.
func TestRegistryNoBackend(t *testing.T) {
	r := NewRegistry()

	_, err := r.NewTarget(transform.Sz(100, 100))
	if err == nil {
		t.Fatal("expected error with no backends")
	}

	if !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("expected ErrNoBackendAvailable, got %v", err)
	}
}

// TestRegistryFactoryError tests handling of factory errors.
func TestRegistryFactoryError(t *testing.T) {
	r := NewRegistry()

	expectedErr := errors.New("creation failed")
	r.Register("failing", 50, func(size transform.Size) (transform.DrawTarget, error) {
		return nil, expectedErr
	}, nil)

	_, err := r.NewTargetByName("failing", transform.Sz(100, 100))
	if err == nil {
		t.Fatal("expected error from factory")
	}

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected factory error, got %v", err)
	}
}

// TestRegistryPrioritySelection tests that highest priority is selected.
func TestRegistryPrioritySelection(t *testing.T) {
	r := NewRegistry()

	var selected string

	r.Register("low", 10, func(size transform.Size) (transform.DrawTarget, error) {
		selected = "low"
		return NewImageTarget(size.Width, size.Height), nil
	}, nil)

	r.Register("high", 100, func(size transform.Size) (transform.DrawTarget, error) {
		selected = "high"
		return NewImageTarget(size.Width, size.Height), nil
	}, nil)

	_, err := r.NewTarget(transform.Sz(100, 100))
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}

	if selected != "high" {
		t.Errorf("selected = %s, want high (highest priority)", selected)
	}
}

// TestRegistryOverwrite tests that re-registering overwrites.
func TestRegistryOverwrite(t *testing.T) {
	r := NewRegistry()

	r.Register("test", 10, imageFactory, nil)

	r.Register("test", 50, imageFactory, nil)

	entry, _ := r.Get("test")
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50 (should be overwritten)", entry.Priority)
	}
}

// TestGlobalRegistry tests the global registry functions.
func TestGlobalRegistry(t *testing.T) {
	// The global registry should have "image" registered from init()
	available := Available()

	found := false
	for _, name := range available {
		if name == "image" {
			found = true
			break
		}
	}

	if !found {
		t.Error("'image' backend should be in global registry")
	}

	// Test global NewTarget
	s, err := NewTarget(transform.Sz(100, 100))
	if err != nil {
		t.Fatalf("global NewTarget failed: %v", err)
	}

	if s.Size().Width != 100 {
		t.Errorf("Width = %d, want 100", s.Size().Width)
	}
}

// TestBackendNotFoundError tests error message formatting.
func TestBackendNotFoundError(t *testing.T) {
	err := &BackendNotFoundError{Name: "ssd1306"}
	msg := err.Error()

	if msg != "surface: backend not found: ssd1306" {
		t.Errorf("error message = %q, unexpected format", msg)
	}
}

// TestBackendUnavailableError tests error message formatting.
func TestBackendUnavailableError(t *testing.T) {
	err := &BackendUnavailableError{Name: "st7789"}
	msg := err.Error()

	if msg != "surface: backend unavailable: st7789" {
		t.Errorf("error message = %q, unexpected format", msg)
	}
}

// TestRegistryInvalidSize tests rejection of empty target sizes.
func TestRegistryInvalidSize(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, imageFactory, nil)

	for _, size := range []transform.Size{transform.Sz(0, 10), transform.Sz(10, -1)} {
		if _, err := r.NewTargetByName("test", size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewTargetByName(%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

// TestRegistryFallback tests that a failing backend falls through to the next.
func TestRegistryFallback(t *testing.T) {
	r := NewRegistry()

	r.Register("broken", 100, func(transform.Size) (transform.DrawTarget, error) {
		return nil, errors.New("display not connected")
	}, nil)
	r.Register("image", 10, imageFactory, nil)

	s, err := r.NewTarget(transform.Sz(8, 4))
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}
	if _, ok := s.(*ImageTarget); !ok {
		t.Errorf("NewTarget returned %T, want *ImageTarget", s)
	}
}

// TestRegistryTieBreak tests deterministic ordering for equal priorities.
func TestRegistryTieBreak(t *testing.T) {
	r := NewRegistry()
	r.Register("b", 10, imageFactory, nil)
	r.Register("a", 10, imageFactory, nil)

	list := r.List()
	if len(list) != 2 || list[0] != "a" || list[1] != "b" {
		t.Errorf("List() = %v, want [a b]", list)
	}
}
