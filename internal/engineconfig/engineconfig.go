package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds engine preferences (window size, render backend, camera
// defaults). Persisted across runs.
type EnginePrefs struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Backend      string `json:"backend,omitempty"`
	VSync        bool   `json:"vsync"`
	Orthographic bool   `json:"orthographic"`
	CameraSpeed  float32 `json:"camera_speed"`
}

// Default returns default engine preferences (1000x800 window, default backend,
// perspective projection).
func Default() EnginePrefs {
	return EnginePrefs{
		WindowWidth:  1000,
		WindowHeight: 800,
		WindowTitle:  "Shape Engine",
		Backend:      "",
		VSync:        true,
		Orthographic: false,
		CameraSpeed:  2.5,
	}
}

// Load reads engine preferences from config/engine.json. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p EnginePrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		d := Default()
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	if p.CameraSpeed <= 0 {
		p.CameraSpeed = Default().CameraSpeed
	}
	return p, nil
}

// Save writes engine preferences to config/engine.json, creating the config directory if needed.
func Save(p EnginePrefs) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}
