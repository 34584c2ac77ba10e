package backend

import (
	"sort"
	"strings"
	"testing"

	"github.com/gogpu/ndview"
)

func TestRegister(t *testing.T) {
	name := "test-register"
	Register(name, func() ndview.Backend { return NewNull() })
	defer Unregister(name)

	if !IsRegistered(name) {
		t.Errorf("backend %q not registered", name)
	}
	b, err := New(name)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", name, err)
	}
	if _, ok := b.(*Null); !ok {
		t.Errorf("New(%q) returned %T, want *Null", name, b)
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	name := "test-duplicate"
	Register(name, func() ndview.Backend { return NewNull() })
	defer Unregister(name)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(name, func() ndview.Backend { return NewNull() })
}

func TestRegister_NilFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil factory")
		}
	}()
	Register("test-nil", nil)
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("no-such-backend")
	if err == nil {
		t.Fatal("New of unknown backend must fail")
	}
	if !strings.Contains(err.Error(), "no-such-backend") {
		t.Errorf("error does not name the backend: %v", err)
	}
	if !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("error missing import hint: %v", err)
	}
}

func TestAvailable(t *testing.T) {
	names := Available()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Available not sorted: %v", names)
	}
	for _, want := range []string{"json", "null", "raster", "svg"} {
		if !IsRegistered(want) {
			t.Errorf("built-in backend %q missing from registry", want)
		}
	}
}

func TestUnregister(t *testing.T) {
	name := "test-unregister"
	Register(name, func() ndview.Backend { return NewNull() })
	Unregister(name)
	if IsRegistered(name) {
		t.Errorf("backend %q still registered after Unregister", name)
	}
	// Unregistering twice is a no-op.
	Unregister(name)
}
