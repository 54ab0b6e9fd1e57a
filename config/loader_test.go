package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "display.yml"))
	set, loaded, err := store.Load()
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if loaded {
		t.Error("missing file should report not loaded")
	}
	if set.LineCount != DefaultLineCount {
		t.Errorf("expected default line count %d, got %d", DefaultLineCount, set.LineCount)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "display.yml"))
	want := Settings{
		StopID:      "4111",
		LineCount:   3,
		RouteFilter: "25,26",
		Line1Name:   "25",
		Line3StopID: "4118",
		Line3Filter: "26",
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded {
		t.Fatal("expected record to be present")
	}
	if got != want {
		t.Errorf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestLoad_CorrectsLineCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{name: "zero", count: 0, want: DefaultLineCount},
		{name: "too large", count: 7, want: DefaultLineCount},
		{name: "negative", count: -1, want: DefaultLineCount},
		{name: "in range", count: 1, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "display.yml")
			if err := os.WriteFile(path, []byte("stopID: \"4111\"\nlineCount: "+strconv.Itoa(tt.count)+"\n"), 0o644); err != nil {
				t.Fatal(err)
			}
			set, _, err := NewStore(path).Load()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if set.LineCount != tt.want {
				t.Errorf("line count %d should load as %d, got %d", tt.count, tt.want, set.LineCount)
			}
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.yml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	set, loaded, err := NewStore(path).Load()
	if err == nil {
		t.Error("malformed file should return an error")
	}
	if loaded {
		t.Error("malformed file should report not loaded")
	}
	if set.LineCount != DefaultLineCount {
		t.Error("malformed file should fall back to defaults")
	}
}

func TestApplySession(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "display.yml"))
	current := Default()
	current.StopID = "4111"

	same := current
	if _, changed := store.ApplySession(current, same); changed {
		t.Error("identical session result should not count as changed")
	}

	updated := current
	updated.RouteFilter = "D,2"
	effective, changed := store.ApplySession(current, updated)
	if !changed {
		t.Error("differing session result should count as changed")
	}
	if effective.RouteFilter != "D,2" {
		t.Errorf("expected updated settings, got %+v", effective)
	}

	// Out-of-range line count from a session is corrected before compare.
	bad := current
	bad.LineCount = 9
	effective, changed = store.ApplySession(current, bad)
	if changed {
		t.Error("line count correction should make the record identical again")
	}
	if effective.LineCount != DefaultLineCount {
		t.Errorf("expected corrected line count, got %d", effective.LineCount)
	}
}

func TestUsesAltStop(t *testing.T) {
	tests := []struct {
		name string
		set  Settings
		want bool
	}{
		{name: "two lines", set: Settings{StopID: "1", LineCount: 2, Line3StopID: "2"}, want: false},
		{name: "no alt stop", set: Settings{StopID: "1", LineCount: 3}, want: false},
		{name: "same stop", set: Settings{StopID: "1", LineCount: 3, Line3StopID: "1"}, want: false},
		{name: "independent stop", set: Settings{StopID: "1", LineCount: 3, Line3StopID: "2"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.UsesAltStop(); got != tt.want {
				t.Errorf("UsesAltStop() = %v, want %v", got, tt.want)
			}
		})
	}
}
