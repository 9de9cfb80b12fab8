package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo describes a scene that can be rendered by name
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Type        string `json:"type"`               // "builtin" or "json"
	FilePath    string `json:"filePath,omitempty"` // JSON scenes only
}

type builtin struct {
	info   SceneInfo
	create func() *Scene
}

var builtins = []builtin{
	{SceneInfo{ID: "default", DisplayName: "Default (walls, spheres, two lights)", Type: "builtin"}, NewDefaultScene},
	{SceneInfo{ID: "empty", DisplayName: "Empty", Type: "builtin"}, func() *Scene {
		return NewEmptyScene(DefaultWidth, DefaultHeight, DefaultBackground)
	}},
	{SceneInfo{ID: "sphere", DisplayName: "Single unlit sphere", Type: "builtin"}, func() *Scene {
		return NewSingleSphereScene(DefaultWidth, DefaultHeight)
	}},
}

// ScenesDir is where JSON scene files are discovered
var ScenesDir = "scenes"

// ErrUnknownScene is returned when a name matches no built-in or discovered scene
var ErrUnknownScene = errors.New("unknown scene")

// ListScenes returns the built-in scenes followed by JSON scenes found in ScenesDir
func ListScenes() ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}

	files, err := filepath.Glob(filepath.Join(ScenesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}
	sort.Strings(files)
	for _, file := range files {
		id := strings.TrimSuffix(filepath.Base(file), ".json")
		scenes = append(scenes, SceneInfo{ID: id, DisplayName: id, Type: "json", FilePath: file})
	}

	return scenes, nil
}

// Create builds a scene by built-in name, JSON scene name in ScenesDir, or path to a .json file
func Create(name string) (*Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name is empty")
	}

	for _, b := range builtins {
		if b.info.ID == name {
			return b.create(), nil
		}
	}

	if strings.HasSuffix(name, ".json") {
		return Load(name)
	}

	path := filepath.Join(ScenesDir, name+".json")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
}

// Lookup builds a scene by one of the IDs reported by ListScenes.
// Paths are never accepted, so callers may pass untrusted names.
func Lookup(id string) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == id {
			return b.create(), nil
		}
	}

	scenes, err := ListScenes()
	if err != nil {
		return nil, err
	}
	for _, info := range scenes {
		if info.Type == "json" && info.ID == id {
			return Load(info.FilePath)
		}
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownScene, id)
}
