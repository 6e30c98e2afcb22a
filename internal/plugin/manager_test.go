package plugin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()

	pluginDir := filepath.Join(dir, name)
	if err := os.MkdirAll(pluginDir, 0755); err != nil {
		t.Fatalf("failed to create plugin dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(pluginDir, "plugin.json"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
}

func TestManager_Discover(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "abhinaya-plugin-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	writeManifest(t, tmpDir, "announcer", `{
		"name": "announcer",
		"version": "1.0.0",
		"executable": "announcer.sh",
		"events": ["thumbs_up", "victory"]
	}`)
	writeManifest(t, tmpDir, "broken", `not json`)

	m := NewManager(tmpDir)
	if err := m.Discover(); err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if len(m.List()) != 1 {
		t.Fatalf("expected 1 plugin, got %d", len(m.List()))
	}

	p, err := m.Get("announcer")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.Executable != filepath.Join(tmpDir, "announcer", "announcer.sh") {
		t.Errorf("unexpected executable path %q", p.Executable)
	}
	if !p.ReactsTo("thumbs_up") || !p.ReactsTo("victory") {
		t.Error("plugin should react to its manifest events")
	}
	if p.ReactsTo("fist") {
		t.Error("plugin should not react to unsubscribed labels")
	}
}

func TestManager_DiscoverMissingDir(t *testing.T) {
	m := NewManager("/no/such/dir")
	if err := m.Discover(); err != nil {
		t.Errorf("missing plugin dir should not be an error, got %v", err)
	}
	if len(m.List()) != 0 {
		t.Errorf("expected no plugins, got %d", len(m.List()))
	}
}

func TestManager_GetMissing(t *testing.T) {
	m := NewManager(t.TempDir())
	if _, err := m.Get("nope"); !errors.Is(err, ErrPluginNotFound) {
		t.Errorf("expected ErrPluginNotFound, got %v", err)
	}
}

func TestManager_Subscribers(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "abhinaya-plugin-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	writeManifest(t, tmpDir, "wave-watcher", `{
		"name": "wave-watcher",
		"version": "1.0.0",
		"executable": "watch.sh",
		"events": ["open_hand"]
	}`)
	writeManifest(t, tmpDir, "catch-all", `{
		"name": "catch-all",
		"version": "1.0.0",
		"executable": "all.sh",
		"events": ["*"]
	}`)

	m := NewManager(tmpDir)
	if err := m.Discover(); err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if got := m.Subscribers("open_hand"); len(got) != 2 {
		t.Errorf("expected 2 subscribers for open_hand, got %d", len(got))
	}
	if got := m.Subscribers("fist"); len(got) != 1 {
		t.Errorf("expected only the wildcard subscriber for fist, got %d", len(got))
	}
}

func TestManager_DiscoverClearsPrevious(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "abhinaya-plugin-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	writeManifest(t, tmpDir, "transient", `{
		"name": "transient",
		"version": "1.0.0",
		"executable": "run.sh",
		"events": ["fist"]
	}`)

	m := NewManager(tmpDir)
	if err := m.Discover(); err != nil {
		t.Fatalf("first Discover failed: %v", err)
	}
	if len(m.List()) != 1 {
		t.Fatalf("expected 1 plugin, got %d", len(m.List()))
	}

	if err := os.RemoveAll(filepath.Join(tmpDir, "transient")); err != nil {
		t.Fatalf("failed to remove plugin: %v", err)
	}
	if err := m.Discover(); err != nil {
		t.Fatalf("second Discover failed: %v", err)
	}
	if len(m.List()) != 0 {
		t.Errorf("expected removed plugin to be gone, got %d", len(m.List()))
	}
}
