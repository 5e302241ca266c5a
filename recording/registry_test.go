package recording

import (
	"errors"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/treeviewer/highlight"
)

// drawCall is one FillPath or StrokePath call seen by mockBackend.
type drawCall struct {
	kind  string
	id    highlight.NodeID
	paint Paint
	style highlight.StrokeStyle
}

// mockBackend is a minimal backend implementation for testing.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	width      int
	height     int
	transform  Matrix
	calls      []drawCall
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.beginCalls++
	b.width = width
	b.height = height
	return nil
}

func (b *mockBackend) End() error {
	b.endCalls++
	return nil
}

func (b *mockBackend) SetTransform(m Matrix) { b.transform = m }

func (b *mockBackend) FillPath(id highlight.NodeID, _ *highlight.Path, paint Paint) {
	b.calls = append(b.calls, drawCall{kind: "fill", id: id, paint: paint})
}

func (b *mockBackend) StrokePath(id highlight.NodeID, _ *highlight.Path, style highlight.StrokeStyle) {
	b.calls = append(b.calls, drawCall{kind: "stroke", id: id, style: style})
}


func mockFactory(name string) BackendFactory {
	return func() Backend { return newMockBackend(name) }
}

func TestRegistryNew(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("test", mockFactory("test")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	backend, err := r.New("test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatalf("backend is %T, want *mockBackend", backend)
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}

	// Each call yields a fresh instance.
	other, _ := r.New("test")
	if other == backend {
		t.Error("New returned the same instance twice")
	}
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()
	if _, err := r.New("unknown"); !errors.Is(err, ErrBackendNotFound) {
		t.Errorf("New(unknown) error = %v, want ErrBackendNotFound", err)
	}
	if err := r.Register("nil", nil); !errors.Is(err, ErrNilFactory) {
		t.Errorf("Register(nil) error = %v, want ErrNilFactory", err)
	}
	if err := r.Register("dup", mockFactory("dup")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register("dup", mockFactory("dup")); !errors.Is(err, ErrBackendExists) {
		t.Errorf("duplicate Register error = %v, want ErrBackendExists", err)
	}
}

func TestRegistryNamesAndLen(t *testing.T) {
	r := NewRegistry()
	if r.Len() != 0 || len(r.Names()) != 0 {
		t.Fatalf("new registry not empty: %v", r.Names())
	}
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		if err := r.Register(name, mockFactory(name)); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}

	want := []string{"alpha", "bravo", "charlie"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}

	r.Unregister("bravo")
	r.Unregister("nonexistent")
	if r.Has("bravo") || r.Len() != 2 {
		t.Errorf("after Unregister: Has(bravo) = %v, Len() = %d", r.Has("bravo"), r.Len())
	}
}

func TestSharedRegistry(t *testing.T) {
	const name = "shared-test"
	Register(name, mockFactory(name))
	defer Unregister(name)

	if !IsRegistered(name) {
		t.Fatal("backend not registered")
	}
	if !slices.Contains(Backends(), name) {
		t.Errorf("Backends() = %v, missing %q", Backends(), name)
	}
	if Count() < 1 {
		t.Errorf("Count() = %d", Count())
	}
	if MustBackend(name) == nil {
		t.Error("MustBackend returned nil")
	}
	if _, err := NewBackend("shared-missing"); !errors.Is(err, ErrBackendNotFound) {
		t.Errorf("NewBackend(missing) error = %v", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	const name = "panic-test"
	Register(name, mockFactory(name))
	defer Unregister(name)

	tests := []struct {
		name string
		fn   func()
	}{
		{"duplicate", func() { Register(name, mockFactory(name)) }},
		{"nil factory", func() { Register("panic-nil", nil) }},
		{"must unknown", func() { _ = MustBackend("panic-unknown") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := "backend-" + strconv.Itoa(i)
			if err := r.Register(name, mockFactory(name)); err != nil {
				t.Errorf("Register(%s): %v", name, err)
			}
			_ = r.Names()
			_, _ = r.New(name)
		}()
	}
	wg.Wait()
	if r.Len() != 8 {
		t.Errorf("Len() = %d, want 8", r.Len())
	}
}
