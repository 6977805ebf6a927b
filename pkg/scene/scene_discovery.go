package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to JSON file (file type only)
}

// builtinScenes maps scene IDs to their constructors
var builtinScenes = map[string]struct {
	info  SceneInfo
	build func(...geometry.CameraConfig) *Scene
}{
	"default": {
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Three spheres lit by a point light below the camera",
			Type:        "builtin",
		},
		build: NewDefaultScene,
	},
	"sphere-row": {
		info: SceneInfo{
			ID:          "sphere-row",
			Name:        "Sphere Row",
			Description: "Five spheres receding from the camera",
			Type:        "builtin",
		},
		build: NewSphereRowScene,
	},
}

// ListBuiltinScenes returns the built-in scenes sorted by ID
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// ListSceneFiles scans dir for JSON scene files. A missing directory
// yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ParseSceneMetadata reads the name and description of a scene file
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	nameWithoutExt := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	info := SceneInfo{
		ID:       "file:" + nameWithoutExt,
		Name:     titleCase(nameWithoutExt),
		Type:     "file",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, err
	}

	var meta struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return info, err
	}
	if meta.Name != "" {
		info.Name = meta.Name
	}
	info.Description = meta.Description

	return info, nil
}

// ListAllScenes returns built-in scenes followed by scene files found in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	return append(ListBuiltinScenes(), files...), nil
}

// CreateScene resolves a scene by built-in ID, by name inside dir, or by a
// direct path to a .json file
func CreateScene(name, dir string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name must not be empty")
	}

	if b, ok := builtinScenes[name]; ok {
		s := b.build(cameraOverrides...)
		if err := s.Validate(); err != nil {
			return nil, err
		}
		return s, nil
	}

	path := name
	if !strings.HasSuffix(path, ".json") {
		path = filepath.Join(dir, strings.TrimPrefix(name, "file:")+".json")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("unknown scene %q", name)
	}

	s, err := LoadSceneFile(path)
	if err != nil {
		return nil, err
	}
	if len(cameraOverrides) > 0 {
		s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, cameraOverrides[0])
	}
	return s, nil
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
