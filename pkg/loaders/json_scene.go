package loaders

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

var (
	// ErrUnknownObjectType is returned for an object whose "type" is not a known surface
	ErrUnknownObjectType = errors.New("unknown object type")
	// ErrMissingField is returned when a required key is absent
	ErrMissingField = errors.New("missing required field")
	// ErrUnknownPoint is returned when a vertex names a point that is not in "points"
	ErrUnknownPoint = errors.New("unknown point")
	// ErrInvalidPath is returned when a referenced file escapes the asset root
	ErrInvalidPath = errors.New("invalid asset path")
	// ErrInvalidVector is returned when a vector does not have exactly three components
	ErrInvalidVector = errors.New("vector must have 3 components")
)

// Vec is a JSON [x, y, z] triple
type Vec [3]float64

// UnmarshalJSON requires exactly three numbers
func (v *Vec) UnmarshalJSON(data []byte) error {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) != 3 {
		return fmt.Errorf("%w: got %d components", ErrInvalidVector, len(values))
	}
	copy(v[:], values)
	return nil
}

// Vec3 converts to core.Vec3
func (v Vec) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// PointRef is a vertex given either as a literal [x, y, z] or as the name of an entry in "points"
type PointRef struct {
	Name  string
	Value Vec
}

// UnmarshalJSON accepts a string name or a numeric triple
func (p *PointRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &p.Name)
	}
	return json.Unmarshal(data, &p.Value)
}

// CameraDescription overrides the default camera. Absent keys keep their defaults.
type CameraDescription struct {
	Eye    *Vec     `json:"eye,omitempty"`
	Center *Vec     `json:"center,omitempty"`
	Up     *Vec     `json:"up,omitempty"`
	Fov    *float64 `json:"fov,omitempty"` // Vertical, degrees
	Width  *int     `json:"width,omitempty"`
	Height *int     `json:"height,omitempty"`
}

// RenderDescription overrides the default bounce limits
type RenderDescription struct {
	MaxDepth       *int     `json:"max_depth,omitempty"`
	MinCoefficient *float64 `json:"min_coefficient,omitempty"`
}

// MaterialDescription holds the optional shading keys shared by every object
type MaterialDescription struct {
	N              *float64 `json:"N,omitempty"`
	ReflectionFact *float64 `json:"reflection_fact,omitempty"`
	RefractionFact *float64 `json:"refraction_fact,omitempty"`
	SpecularPower  *float64 `json:"specular_power,omitempty"`
	SpecularFact   *Vec     `json:"specular_fact,omitempty"`
	DiffuseFact    *Vec     `json:"diffuse_fact,omitempty"`
}

// ObjectDescription is one entry of "objects". Which keys are required depends on Type.
type ObjectDescription struct {
	Type string `json:"type"`

	// Ball
	Center *Vec     `json:"center,omitempty"`
	Radius *float64 `json:"radius,omitempty"`

	// Triangle, GridSurface and ImageSurface
	Triangle []Vec `json:"triangle,omitempty"`

	// GridSurface
	Colors    []Vec    `json:"colors,omitempty"`
	GridWidth *float64 `json:"grid_width,omitempty"`

	// ImageSurface
	Img string `json:"img,omitempty"`

	// Body, either inline triangles or a mesh file
	Triangles [][]PointRef `json:"triangles,omitempty"`
	ObjFile   string       `json:"objfile,omitempty"`
	RotateX   float64      `json:"rotate_x,omitempty"`
	RotateY   float64      `json:"rotate_y,omitempty"`
	RotateZ   float64      `json:"rotate_z,omitempty"`
	Move      *Vec         `json:"move,omitempty"`
	Resize    *float64     `json:"resize,omitempty"`

	MaterialDescription
}

// LightDescription is one entry of "lights"
type LightDescription struct {
	Point *Vec `json:"point"`
	Color *Vec `json:"color"`
}

// SceneDescription is the parsed form of a JSON scene file
type SceneDescription struct {
	Camera  *CameraDescription  `json:"camera,omitempty"`
	Render  *RenderDescription  `json:"render,omitempty"`
	Points  map[string]Vec      `json:"points,omitempty"`
	Objects []ObjectDescription `json:"objects"`
	Lights  []LightDescription  `json:"lights"`

	// BaseDir is where relative asset paths are resolved from
	BaseDir string `json:"-"`
	// AssetRoot, when set, is the directory every asset must stay inside
	AssetRoot string `json:"-"`
}

// ParseSceneJSON parses a JSON scene and checks the top-level structure
func ParseSceneJSON(data []byte) (*SceneDescription, error) {
	var desc SceneDescription
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse scene JSON: %w", err)
	}
	if desc.Objects == nil {
		return nil, fmt.Errorf("%w: objects", ErrMissingField)
	}
	if desc.Lights == nil {
		return nil, fmt.Errorf("%w: lights", ErrMissingField)
	}
	for i, light := range desc.Lights {
		if light.Point == nil {
			return nil, fmt.Errorf("light %d: %w: point", i, ErrMissingField)
		}
		if light.Color == nil {
			return nil, fmt.Errorf("light %d: %w: color", i, ErrMissingField)
		}
	}
	return &desc, nil
}

// LoadSceneFile reads and parses a JSON scene. Relative asset paths resolve against its directory.
func LoadSceneFile(filename string) (*SceneDescription, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename cannot be empty")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	desc, err := ParseSceneJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	desc.BaseDir = filepath.Dir(filename)
	return desc, nil
}

// ResolvePath returns the location of an asset referenced by the scene
func (d *SceneDescription) ResolvePath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.Contains(name, "\x00") {
		return "", fmt.Errorf("%w: null bytes not allowed", ErrInvalidPath)
	}

	resolved := name
	if !filepath.IsAbs(name) {
		resolved = filepath.Join(d.BaseDir, name)
	}
	resolved = filepath.Clean(resolved)

	if d.AssetRoot != "" {
		root, err := filepath.Abs(d.AssetRoot)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
		}
		abs, err := filepath.Abs(resolved)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidPath, err)
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("%w: %s is outside %s", ErrInvalidPath, name, d.AssetRoot)
		}
	}
	return resolved, nil
}

// ResolvePoint returns the coordinates of a vertex, looking names up in Points
func (d *SceneDescription) ResolvePoint(ref PointRef) (core.Vec3, error) {
	if ref.Name == "" {
		return ref.Value.Vec3(), nil
	}
	v, ok := d.Points[ref.Name]
	if !ok {
		return core.Vec3{}, fmt.Errorf("%w: %q", ErrUnknownPoint, ref.Name)
	}
	return v.Vec3(), nil
}
