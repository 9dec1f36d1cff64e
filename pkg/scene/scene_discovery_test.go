package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"dragon_gold", "Dragon Gold"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "two_balls.json", `{"objects": [], "lights": []}`)
	writeSceneFile(t, dir, "a-room.json", `{"objects": [], "lights": []}`)
	writeSceneFile(t, dir, "notes.txt", "not a scene")

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}

	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}
	if scenes[0].DisplayName != "A Room" || scenes[1].DisplayName != "Two Balls" {
		t.Errorf("Expected scenes sorted by display name, got %q and %q", scenes[0].DisplayName, scenes[1].DisplayName)
	}
	if scenes[1].ID != "json:two_balls" || scenes[1].Type != "json" {
		t.Errorf("Unexpected scene info: %+v", scenes[1])
	}
	if scenes[1].FilePath != filepath.Join(dir, "two_balls.json") {
		t.Errorf("Unexpected file path %s", scenes[1].FilePath)
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty, non-nil list, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "extra.json", `{"objects": [], "lights": []}`)

	scenes, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	expected := []string{"default", "cornell", "spheregrid", "meshes", "textures", "json:extra"}
	if len(scenes) != len(expected) {
		t.Fatalf("Expected %d scenes, got %d", len(expected), len(scenes))
	}
	for i, id := range expected {
		if scenes[i].ID != id {
			t.Errorf("Scene %d: expected %s, got %s", i, id, scenes[i].ID)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeSceneFile(t, dir, "single.json", `{
		"objects": [{"type": "Ball", "center": [0, 0, 0], "radius": 1}],
		"lights": [{"point": [0, 0, 5], "color": [1, 1, 1]}]
	}`)

	tests := []struct {
		name        string
		input       string
		wantName    string
		wantObjects int
		wantErr     bool
	}{
		{"builtin default", "default", "default", 5, false},
		{"builtin cornell", "cornell", "cornell", 7, false},
		{"builtin spheregrid", "spheregrid", "spheregrid", 65, false},
		{"builtin meshes", "meshes", "meshes", 4, false},
		{"builtin textures", "textures", "textures", 5, false},
		{"json by id", "json:single", "single", 1, false},
		{"json by path", path, "single", 1, false},
		{"unknown name", "nope", "", 0, true},
		{"missing json", "json:missing", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(tt.input, dir, nil)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load(%q) error: %v", tt.input, err)
			}
			if s.Name != tt.wantName {
				t.Errorf("Expected name %q, got %q", tt.wantName, s.Name)
			}
			if len(s.Objects) != tt.wantObjects {
				t.Errorf("Expected %d objects, got %d", tt.wantObjects, len(s.Objects))
			}
		})
	}
}

func TestLoad_BundledScenes(t *testing.T) {
	dir := filepath.Join("..", "..", "scenes")
	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles failed: %v", err)
	}
	if len(scenes) == 0 {
		t.Fatal("Expected bundled scenes")
	}

	for _, info := range scenes {
		t.Run(info.ID, func(t *testing.T) {
			s, err := Load(info.ID, dir, nil)
			if err != nil {
				t.Fatalf("Failed to load %s: %v", info.ID, err)
			}
			if len(s.Objects) == 0 || len(s.Lights) == 0 {
				t.Errorf("Scene %s has %d objects and %d lights", info.ID, len(s.Objects), len(s.Lights))
			}
		})
	}
}
