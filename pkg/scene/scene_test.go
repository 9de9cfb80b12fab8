package scene

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-strip-raytracer/pkg/core"
	"github.com/df07/go-strip-raytracer/pkg/renderer"
)

const validSceneJSON = `{
  "width": 8,
  "height": 4,
  "background": [0, 0.1, 0.1],
  "camera": {"center": [0, 0, 0], "lookAt": [0, 0, -1], "up": [0, 1, 0], "vfov": 60},
  "lights": [
    {"type": "point", "position": [0, 5, 0], "color": [1, 1, 1], "intensity": 1},
    {"type": "directional", "direction": [0, -2, 0], "color": [1, 1, 1], "intensity": 0.5}
  ],
  "spheres": [{"center": [0, 0, -3], "radius": 1, "material": {"color": [1, 0, 0], "ambient": 0.1, "diffuse": 0.9}}],
  "rectangles": [{"corner": [-2, -1, 2], "u": [4, 0, 0], "v": [0, 0, -4], "material": {"color": [1, 1, 1], "ambient": 0.1, "diffuse": 0.9}}]
}`

func TestDecode_Valid(t *testing.T) {
	s, err := Decode(strings.NewReader(validSceneJSON))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s.Width != 8 || s.Height != 4 {
		t.Errorf("Expected 8x4, got %dx%d", s.Width, s.Height)
	}
	if s.Background != core.NewVec3(0, 0.1, 0.1) {
		t.Errorf("Unexpected background %v", s.Background)
	}
	if len(s.Lights) != 2 || len(s.Spheres) != 1 || len(s.Rectangles) != 1 {
		t.Errorf("Expected 2 lights, 1 sphere, 1 rectangle; got %d, %d, %d",
			len(s.Lights), len(s.Spheres), len(s.Rectangles))
	}
	if s.Camera.VFov != 60 || s.Camera.LookAt != core.NewVec3(0, 0, -1) {
		t.Errorf("Unexpected camera %+v", s.Camera)
	}
	if s.Spheres[0].Material.Color != core.NewVec3(1, 0, 0) {
		t.Errorf("Unexpected sphere material %+v", s.Spheres[0].Material)
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		invalid bool // validation failure rather than a JSON syntax error
	}{
		{"zero width", [2]string{`"width": 8`, `"width": 0`}, true},
		{"oversized image", [2]string{`"width": 8`, `"width": 4294967296`}, true},
		{"negative radius", [2]string{`"radius": 1`, `"radius": -1`}, true},
		{"unknown light type", [2]string{`"type": "point"`, `"type": "spot"`}, true},
		{"zero light direction", [2]string{`"direction": [0, -2, 0]`, `"direction": [0, 0, 0]`}, true},
		{"degenerate rectangle", [2]string{`"v": [0, 0, -4]`, `"v": [2, 0, 0]`}, true},
		{"unknown field", [2]string{`"width": 8`, `"widht": 8, "width": 8`}, false},
		{"malformed json", [2]string{`"width": 8,`, `"width": 8`}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Replace(validSceneJSON, tt.replace[0], tt.replace[1], 1)
			s, err := Decode(strings.NewReader(input))
			if err == nil {
				t.Fatal("Expected error, got none")
			}
			if s != nil {
				t.Error("Expected nil scene on error")
			}
			if tt.invalid && !errors.Is(err, ErrInvalidScene) {
				t.Errorf("Expected ErrInvalidScene, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.json")
	if err := os.WriteFile(path, []byte(validSceneJSON), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(s.GetShapes()) != 2 {
		t.Errorf("Expected 2 shapes, got %d", len(s.GetShapes()))
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "custom.json"), []byte(validSceneJSON), 0644); err != nil {
		t.Fatal(err)
	}
	oldDir := ScenesDir
	ScenesDir = dir
	defer func() { ScenesDir = oldDir }()

	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"empty scene", "empty", false},
		{"sphere scene", "sphere", false},
		{"json scene by name", "custom", false},
		{"json scene by path", filepath.Join(dir, "custom.json"), false},
		{"unknown scene", "nonexistent", true},
		{"missing json path", filepath.Join(dir, "nonexistent.json"), true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Create(tt.sceneType)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene '%s', but got none", tt.sceneType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.sceneType, err)
			}
			if s.Width <= 0 || s.Height <= 0 {
				t.Errorf("Scene '%s' has invalid size %dx%d", tt.sceneType, s.Width, s.Height)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "scenes")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "custom.json"), []byte(validSceneJSON), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "outside.json"), []byte(validSceneJSON), 0644); err != nil {
		t.Fatal(err)
	}
	oldDir := ScenesDir
	ScenesDir = dir
	defer func() { ScenesDir = oldDir }()

	for _, id := range []string{"default", "sphere", "custom"} {
		if _, err := Lookup(id); err != nil {
			t.Errorf("Unexpected error for scene '%s': %v", id, err)
		}
	}

	// Only listed IDs resolve; paths that Create would accept are rejected
	for _, name := range []string{
		filepath.Join(dir, "custom.json"),
		filepath.Join(root, "outside.json"),
		"../outside",
		"custom.json",
		"",
	} {
		s, err := Lookup(name)
		if !errors.Is(err, ErrUnknownScene) || s != nil {
			t.Errorf("Expected ErrUnknownScene for %q, got %v", name, err)
		}
	}
}

func TestListScenes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "ignored.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	oldDir := ScenesDir
	ScenesDir = dir
	defer func() { ScenesDir = oldDir }()

	scenes, err := ListScenes()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var ids []string
	for _, s := range scenes {
		ids = append(ids, s.ID)
	}
	expected := "default,empty,sphere,a,b"
	if strings.Join(ids, ",") != expected {
		t.Errorf("Expected scenes %s, got %v", expected, ids)
	}
}

func TestDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if s.Height%8 != 0 {
		t.Errorf("Default height %d should admit 8 workers", s.Height)
	}
	if len(s.Spheres) != 3 || len(s.Rectangles) != 3 || len(s.Lights) != 2 {
		t.Errorf("Unexpected default scene contents: %d spheres, %d rectangles, %d lights",
			len(s.Spheres), len(s.Rectangles), len(s.Lights))
	}
	if _, err := renderer.NewCamera(s.Camera, s.Width, s.Height); err != nil {
		t.Errorf("Default camera invalid: %v", err)
	}
}

func TestSingleSphereScene_FullCoverage(t *testing.T) {
	s := NewSingleSphereScene(16, 16)
	coordinator, err := renderer.NewCoordinator(s, renderer.Config{Workers: 4}, nopLogger{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	buffer, _, err := coordinator.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for row := 0; row < 16; row++ {
		for col := 0; col < 16; col++ {
			if buffer.At(row, col) == [3]byte{0, 0, 0} {
				t.Fatalf("Pixel (%d, %d) is background black", row, col)
			}
		}
	}
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
