package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to JSON file (json type only)
}

// builtinScenes lists the scenes constructed in code
var builtinScenes = []SceneInfo{
	{
		ID:          "default",
		DisplayName: "Default Scene",
		Description: "Mirror, glass and plastic spheres on a checkered floor",
		Type:        "builtin",
	},
	{
		ID:          "cornell",
		DisplayName: "Cornell Box",
		Description: "Cornell box with a mirror ball and a glass ball",
		Type:        "builtin",
	},
	{
		ID:          "spheregrid",
		DisplayName: "Sphere Grid",
		Description: "Grid of colored spheres with increasing reflectivity",
		Type:        "builtin",
	},
	{
		ID:          "meshes",
		DisplayName: "Triangle Meshes",
		Description: "Box, pyramid and icosahedron mesh bodies",
		Type:        "builtin",
	},
	{
		ID:          "textures",
		DisplayName: "Texture Panels",
		Description: "Checkerboard and gradient image surfaces behind a mirror ball",
		Type:        "builtin",
	},
}

// builtinConstructors builds each built-in scene by ID
var builtinConstructors = map[string]func() *Scene{
	"default":    NewDefaultScene,
	"cornell":    NewCornellScene,
	"spheregrid": NewSphereGridScene,
	"meshes":     NewTriangleMeshScene,
	"textures":   NewTextureScene,
}

// IsBuiltin reports whether name is one of the scenes constructed in code
func IsBuiltin(name string) bool {
	_, ok := builtinConstructors[name]
	return ok
}

// ListSceneFiles returns the JSON scenes in dir sorted by display name.
// A missing directory yields an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return []SceneInfo{}, nil
		}
		return nil, fmt.Errorf("failed to stat scenes directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		scenes = append(scenes, SceneInfo{
			ID:          "json:" + name,
			DisplayName: titleCase(name),
			Type:        "json",
			FilePath:    filePath,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ListAllScenes returns the built-in scenes followed by the JSON scenes in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, err
	}
	all := make([]SceneInfo, 0, len(builtinScenes)+len(files))
	all = append(all, builtinScenes...)
	return append(all, files...), nil
}

// Load resolves a scene by built-in name, "json:<name>" inside dir, or path to a JSON file
func Load(name, dir string, logger core.Logger) (*Scene, error) {
	if build, ok := builtinConstructors[name]; ok {
		return build(), nil
	}

	path := name
	if rest, ok := strings.CutPrefix(name, "json:"); ok {
		path = filepath.Join(dir, rest+".json")
	}
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return LoadJSONScene(path, logger)
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
