package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// LoadJSONScene reads a JSON scene file and builds it
func LoadJSONScene(filename string, logger core.Logger) (*Scene, error) {
	desc, err := loaders.LoadSceneFile(filename)
	if err != nil {
		return nil, err
	}

	s, err := NewFromDescription(desc, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	s.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return s, nil
}

// NewFromDescription builds a scene from a parsed JSON description.
// Mesh and texture files are loaded relative to desc.BaseDir.
func NewFromDescription(desc *loaders.SceneDescription, logger core.Logger) (*Scene, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}

	s := New(nil, nil)
	applyCamera(&s.CameraConfig, desc.Camera)
	applyRender(&s.TraceConfig, desc.Render)

	for i, obj := range desc.Objects {
		surface, err := buildObject(desc, obj, logger)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, obj.Type, err)
		}
		s.AddObject(surface)
	}

	for _, l := range desc.Lights {
		s.AddLight(lights.NewLight(l.Point.Vec3(), l.Color.Vec3()))
	}

	logger.Printf("Scene built: %d objects (%d primitives), %d lights\n",
		len(s.Objects), s.GetPrimitiveCount(), len(s.Lights))
	return s, nil
}

func applyCamera(cfg *CameraConfig, desc *loaders.CameraDescription) {
	if desc == nil {
		return
	}
	if desc.Eye != nil {
		cfg.Eye = desc.Eye.Vec3()
	}
	if desc.Center != nil {
		cfg.Center = desc.Center.Vec3()
	}
	if desc.Up != nil {
		cfg.Up = desc.Up.Vec3()
	}
	if desc.Fov != nil {
		cfg.VFov = *desc.Fov
	}
	if desc.Width != nil {
		cfg.Width = *desc.Width
	}
	if desc.Height != nil {
		cfg.Height = *desc.Height
	}
}

func applyRender(cfg *TraceConfig, desc *loaders.RenderDescription) {
	if desc == nil {
		return
	}
	if desc.MaxDepth != nil {
		cfg.MaxDepth = *desc.MaxDepth
	}
	if desc.MinCoefficient != nil {
		cfg.MinCoefficient = *desc.MinCoefficient
	}
}

// buildMaterial starts from material.Default and overrides the keys that are present
func buildMaterial(desc loaders.MaterialDescription) *material.Material {
	mat := material.Default()
	if desc.N != nil {
		mat.N = *desc.N
	}
	if desc.ReflectionFact != nil {
		mat.ReflectionFact = *desc.ReflectionFact
	}
	if desc.RefractionFact != nil {
		mat.RefractionFact = *desc.RefractionFact
	}
	if desc.SpecularPower != nil {
		mat.SpecularPower = *desc.SpecularPower
	}
	if desc.SpecularFact != nil {
		mat.SpecularFact = desc.SpecularFact.Vec3()
	}
	if desc.DiffuseFact != nil {
		mat.DiffuseFact = desc.DiffuseFact.Vec3()
	}
	return mat
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", loaders.ErrMissingField, field)
}

// triangleOf returns the three points of a "triangle" key
func triangleOf(obj loaders.ObjectDescription) (a, b, c core.Vec3, err error) {
	if len(obj.Triangle) < 3 {
		return a, b, c, missing("triangle")
	}
	return obj.Triangle[0].Vec3(), obj.Triangle[1].Vec3(), obj.Triangle[2].Vec3(), nil
}

func buildObject(desc *loaders.SceneDescription, obj loaders.ObjectDescription, logger core.Logger) (geometry.Surface, error) {
	mat := buildMaterial(obj.MaterialDescription)

	switch obj.Type {
	case "Ball":
		if obj.Center == nil {
			return nil, missing("center")
		}
		if obj.Radius == nil {
			return nil, missing("radius")
		}
		return geometry.NewSphere(obj.Center.Vec3(), *obj.Radius, mat), nil

	case "Triangle":
		a, b, c, err := triangleOf(obj)
		if err != nil {
			return nil, err
		}
		return geometry.NewTriangle(a, b, c, mat), nil

	case "GridSurface":
		a, b, c, err := triangleOf(obj)
		if err != nil {
			return nil, err
		}
		if len(obj.Colors) < 2 {
			return nil, missing("colors")
		}
		if obj.GridWidth == nil {
			return nil, missing("grid_width")
		}
		return geometry.NewGridSurface(a, b, c, obj.Colors[0].Vec3(), obj.Colors[1].Vec3(), *obj.GridWidth, mat), nil

	case "ImageSurface":
		a, b, c, err := triangleOf(obj)
		if err != nil {
			return nil, err
		}
		if obj.Img == "" {
			return nil, missing("img")
		}
		path, err := desc.ResolvePath(obj.Img)
		if err != nil {
			return nil, err
		}
		img, err := loaders.LoadImage(path)
		if err != nil {
			return nil, err
		}
		logger.Printf("Loaded texture %s (%dx%d)\n", path, img.Width, img.Height)
		texture := material.NewImageTexture(img.Width, img.Height, img.Pixels)
		return geometry.NewImageSurface(a, b, c, texture, mat), nil

	case "Body":
		return buildBody(desc, obj, mat, logger)

	default:
		return nil, fmt.Errorf("%w: %q", loaders.ErrUnknownObjectType, obj.Type)
	}
}

// buildBody creates a mesh from inline triangles or from a mesh file
func buildBody(desc *loaders.SceneDescription, obj loaders.ObjectDescription, mat *material.Material, logger core.Logger) (geometry.Surface, error) {
	if obj.Triangles != nil {
		faces := make([][3]core.Vec3, len(obj.Triangles))
		for i, tri := range obj.Triangles {
			if len(tri) != 3 {
				return nil, fmt.Errorf("triangle %d has %d vertices", i, len(tri))
			}
			for j, ref := range tri {
				p, err := desc.ResolvePoint(ref)
				if err != nil {
					return nil, fmt.Errorf("triangle %d: %w", i, err)
				}
				faces[i][j] = p
			}
		}
		return geometry.NewBody(faces, mat), nil
	}

	if obj.ObjFile == "" {
		return nil, missing("triangles or objfile")
	}
	path, err := desc.ResolvePath(obj.ObjFile)
	if err != nil {
		return nil, err
	}

	transform := loaders.IdentityTransform()
	transform.RotateX = obj.RotateX
	transform.RotateY = obj.RotateY
	transform.RotateZ = obj.RotateZ
	if obj.Resize != nil {
		transform.Resize = *obj.Resize
	}
	if obj.Move != nil {
		transform.Move = obj.Move.Vec3()
	}

	faces, err := loaders.LoadMesh(path, transform)
	if err != nil {
		return nil, err
	}
	logger.Printf("Loaded mesh %s: %d faces\n", path, len(faces))
	return geometry.NewBody(faces, mat), nil
}
