package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCleanPaths(t *testing.T) {
	cases := []struct {
		in         string
		wantPrefab string
		wantScript string
	}{
		{"hero.yaml", "hero.yaml", "scripts/hero.yaml"},
		{"prefabs/hero.yaml", "hero.yaml", "scripts/hero.yaml"},
		{"patrol.tengo", "patrol.tengo", "scripts/patrol.tengo"},
		{"scripts/patrol.tengo", "scripts/patrol.tengo", "scripts/patrol.tengo"},
		{"prefabs/scripts/patrol.tengo", "scripts/patrol.tengo", "scripts/patrol.tengo"},
		{"", "", ""},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := cleanPrefabPath(c.in); got != c.wantPrefab {
				t.Errorf("cleanPrefabPath(%q) = %q, want %q", c.in, got, c.wantPrefab)
			}
			if got := cleanScriptPath(c.in); got != c.wantScript {
				t.Errorf("cleanScriptPath(%q) = %q, want %q", c.in, got, c.wantScript)
			}
		})
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "prefabs", "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefabs", "hero.yaml"), []byte("name: edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefabs", "scripts", "patrol.tengo"), []byte("turned := true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	spec, err := LoadEntityBuildSpec("hero.yaml")
	if err != nil {
		t.Fatalf("LoadEntityBuildSpec: %v", err)
	}
	if spec.Name != "edited" {
		t.Fatalf("name = %q, want the disk copy", spec.Name)
	}

	script, err := LoadScript("patrol.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if !strings.Contains(string(script), "turned := true") {
		t.Fatalf("script = %q, want the disk copy", script)
	}

	// Files absent on disk still come from the embedded copy.
	if _, err := LoadEntityBuildSpec("trophy.yaml"); err != nil {
		t.Fatalf("embedded fallback: %v", err)
	}
}

func TestLoadEmbedded(t *testing.T) {
	spec, err := LoadEntityBuildSpec("patroller.yaml")
	if err != nil {
		t.Fatalf("LoadEntityBuildSpec: %v", err)
	}
	patrol, err := DecodeComponentSpec[PatrolComponentSpec](spec.Components["patrol"])
	if err != nil {
		t.Fatalf("decode patrol: %v", err)
	}
	if patrol.Speed <= 0 || patrol.Script == "" {
		t.Fatalf("patrol spec = %+v", patrol)
	}
	if _, err := LoadScript(patrol.Script); err != nil {
		t.Fatalf("LoadScript(%q): %v", patrol.Script, err)
	}

	if _, err := LoadEntityBuildSpec("nope.yaml"); err == nil {
		t.Fatal("expected error for missing prefab")
	}
	if _, err := LoadScript(""); err == nil {
		t.Fatal("expected error for empty script name")
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	got, err := DecodeComponentSpec[TransformComponentSpec](map[string]any{"x": 10, "scale_x": 0.5})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.X != 10 || got.ScaleX != 0.5 || got.Y != 0 {
		t.Fatalf("decoded %+v", got)
	}

	zero, err := DecodeComponentSpec[TransformComponentSpec](nil)
	if err != nil || zero != (TransformComponentSpec{}) {
		t.Fatalf("nil decode = %+v, %v", zero, err)
	}

	if _, err := DecodeComponentSpec[TransformComponentSpec](map[string]any{"x": "left"}); err == nil {
		t.Fatal("expected error decoding a string into a float")
	}
}

func TestAtlasAndAudioSpecs(t *testing.T) {
	atlas, err := LoadAtlasSpec()
	if err != nil {
		t.Fatalf("LoadAtlasSpec: %v", err)
	}
	if len(atlas.Sheets) == 0 {
		t.Fatal("atlas has no sheets")
	}

	audio, err := LoadAudioSpec()
	if err != nil {
		t.Fatalf("LoadAudioSpec: %v", err)
	}
	if len(audio.Music) != 1 || audio.Music[0].Name != "background_music" {
		t.Fatalf("music = %+v", audio.Music)
	}
}

func TestWatcherReportsScriptEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "patrol.tengo")
	if err := os.WriteFile(path, []byte("turned := false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event for %q, want %q", got, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no watcher event")
	}
}

func TestWatcherCloseNil(t *testing.T) {
	var w *Watcher
	if err := w.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}
