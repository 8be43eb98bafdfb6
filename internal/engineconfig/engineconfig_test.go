package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	chdirTemp(t)
	p, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if p != Default() {
		t.Errorf("got %+v, want defaults", p)
	}
}

func TestLoadInvalidJSONReturnsDefaults(t *testing.T) {
	chdirTemp(t)
	if err := os.MkdirAll(filepath.Dir(EngineConfigPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(EngineConfigPath, []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}
	p, _ := Load()
	if p != Default() {
		t.Errorf("got %+v, want defaults", p)
	}
}

func TestLoadRepairsBadValues(t *testing.T) {
	chdirTemp(t)
	if err := os.MkdirAll(filepath.Dir(EngineConfigPath), 0755); err != nil {
		t.Fatal(err)
	}
	cfg := `{"window_width": -5, "window_height": 0, "camera_speed": -1, "vsync": false}`
	if err := os.WriteFile(EngineConfigPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	p, _ := Load()
	d := Default()
	if p.WindowWidth != d.WindowWidth || p.WindowHeight != d.WindowHeight {
		t.Errorf("window %dx%d, want defaults", p.WindowWidth, p.WindowHeight)
	}
	if p.CameraSpeed != d.CameraSpeed {
		t.Errorf("camera speed %v, want %v", p.CameraSpeed, d.CameraSpeed)
	}
	if p.VSync {
		t.Error("vsync should keep the saved false value")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	chdirTemp(t)
	p := Default()
	p.Orthographic = true
	p.Backend = "null"
	if err := Save(p); err != nil {
		t.Fatal(err)
	}
	got, _ := Load()
	if got != p {
		t.Errorf("round trip: got %+v, want %+v", got, p)
	}
}
