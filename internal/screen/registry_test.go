package screen

import (
	"errors"
	"testing"
)

// testScreen returns a minimal valid descriptor for registry tests.
func testScreen(id string) *Screen {
	return &Screen{
		ID:      id,
		Init:    func() (Object, error) { return struct{}{}, nil },
		Destroy: func(Object) {},
	}
}

func TestRegister(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(testScreen("home")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if reg.Count() != 1 {
		t.Errorf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Duplicate(t *testing.T) {
	reg := NewRegistry()

	original := testScreen("home")
	if err := reg.Register(original); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	err := reg.Register(testScreen("home"))
	if !errors.Is(err, ErrDuplicateScreen) {
		t.Fatalf("Register() error = %v, want ErrDuplicateScreen", err)
	}

	// The original descriptor must be unaffected.
	got, lookupErr := reg.Lookup("home")
	if lookupErr != nil {
		t.Fatalf("Lookup() error = %v", lookupErr)
	}
	if got != original {
		t.Error("Lookup() returned a different descriptor after failed re-registration")
	}
	if reg.Count() != 1 {
		t.Errorf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		screen *Screen
	}{
		{
			name:   "nil descriptor",
			screen: nil,
		},
		{
			name:   "empty ID",
			screen: testScreen(""),
		},
		{
			name: "missing Init",
			screen: &Screen{
				ID:      "home",
				Destroy: func(Object) {},
			},
		},
		{
			name: "missing Destroy",
			screen: &Screen{
				ID:   "home",
				Init: func() (Object, error) { return struct{}{}, nil },
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.Register(tt.screen)
			if !errors.Is(err, ErrInvalidScreen) {
				t.Errorf("Register() error = %v, want ErrInvalidScreen", err)
			}
			if reg.Count() != 0 {
				t.Errorf("Count() = %d, want 0", reg.Count())
			}
		})
	}
}

func TestLookup_NotFound(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Lookup("missing")
	if !errors.Is(err, ErrScreenNotFound) {
		t.Errorf("Lookup() error = %v, want ErrScreenNotFound", err)
	}
}

func TestAll_RegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	want := []string{"home", "settings", "diagnostics"}

	for _, id := range want {
		if err := reg.Register(testScreen(id)); err != nil {
			t.Fatalf("Register(%s) error = %v", id, err)
		}
	}

	var got []string
	for id := range reg.All() {
		got = append(got, id)
	}

	if len(got) != len(want) {
		t.Fatalf("All() yielded %d IDs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAll_Restartable(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(testScreen("home")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := reg.Register(testScreen("settings")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	seq := reg.All()

	// First pass stops early; second pass must start over.
	for range seq {
		break
	}

	count := 0
	for range seq {
		count++
	}
	if count != 2 {
		t.Errorf("second iteration yielded %d IDs, want 2", count)
	}
}

func TestFirst(t *testing.T) {
	reg := NewRegistry()

	if _, ok := reg.First(); ok {
		t.Error("First() ok = true on empty registry")
	}

	if err := reg.Register(testScreen("home")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := reg.Register(testScreen("settings")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	id, ok := reg.First()
	if !ok {
		t.Fatal("First() ok = false, want true")
	}
	if id != "home" {
		t.Errorf("First() = %q, want %q", id, "home")
	}
}
