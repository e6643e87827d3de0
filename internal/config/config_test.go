package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, Defaults()) {
		t.Errorf("Embedded tuning.yaml drifted from Defaults()\n got: %+v\nwant: %+v", got, Defaults())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadOverlaysDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := "geyser:\n  interval: 4\nplayer:\n  hearts: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Geyser.Interval != 4 {
		t.Errorf("Expected overlaid interval 4, got %f", got.Geyser.Interval)
	}
	if got.Player.Hearts != 2 {
		t.Errorf("Expected overlaid hearts 2, got %d", got.Player.Hearts)
	}
	if got.Geyser.Duration != Defaults().Geyser.Duration {
		t.Errorf("Expected untouched duration to keep default, got %f", got.Geyser.Duration)
	}
}

func TestLoadMissingFallsBackToEmbedded(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Stalactite.Gravity != 12 {
		t.Errorf("Expected embedded gravity 12, got %f", got.Stalactite.Gravity)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "crumbling_tile:\n  shake_duration: 0\nstalactite:\n  min_countdown: 9\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"shake_duration", "max_countdown"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %v", want, err)
		}
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("geyser: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected unmarshal error")
	}
}

func TestRelevantEvents(t *testing.T) {
	tests := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: "levels/maze.yaml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "tuning.YML", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "levels/maze.yaml", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		if got := relevant(tt.event); got != tt.want {
			t.Errorf("relevant(%v): expected %v, got %v", tt.event, tt.want, got)
		}
	}
}

func TestWatcherReportsWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("door:\n  open_duration: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "tuning.yaml" {
			t.Errorf("Expected tuning.yaml event, got %s", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for watcher event")
	}
}
