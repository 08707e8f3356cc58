package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Vec3Cfg is a JSON triple [x, y, z]
type Vec3Cfg [3]float64

func (v Vec3Cfg) point() core.Point { return core.NewPoint(v[0], v[1], v[2]) }
func (v Vec3Cfg) vector() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }
func (v Vec3Cfg) color() core.Color { return core.NewColor(v[0], v[1], v[2]) }
func (v Vec3Cfg) isZero() bool { return v[0] == 0 && v[1] == 0 && v[2] == 0 }

// Config is the JSON form of a scene file
type Config struct {
	Name              string         `json:"name,omitempty"`
	Description       string         `json:"description,omitempty"`
	Group             string         `json:"group,omitempty"`
	Width             int            `json:"width"`
	Height            int            `json:"height"`
	FOV               float64        `json:"fov,omitempty"`
	MaxRecursionDepth int            `json:"maxRecursionDepth,omitempty"`
	ShadowBias        float64        `json:"shadowBias,omitempty"`
	Primitives        []PrimitiveCfg `json:"primitives"`
	Lights            []LightCfg     `json:"lights"`
}

type PrimitiveCfg struct {
	Type     string      `json:"type"` // "sphere" or "plane"
	Center   Vec3Cfg     `json:"center,omitempty"`
	Radius   float64     `json:"radius,omitempty"`
	Origin   Vec3Cfg     `json:"origin,omitempty"`
	Normal   Vec3Cfg     `json:"normal,omitempty"`
	Material MaterialCfg `json:"material"`
}

type MaterialCfg struct {
	Color   *Vec3Cfg    `json:"color,omitempty"`
	Texture *TextureCfg `json:"texture,omitempty"`
	Albedo  float64     `json:"albedo,omitempty"` // defaults to material.DefaultAlbedo
	Surface SurfaceCfg  `json:"surface"`
}

// TextureCfg names either an image file or a generated pattern
type TextureCfg struct {
	Path    string    `json:"path,omitempty"`    // relative to the scene file
	Pattern string    `json:"pattern,omitempty"` // "checkerboard", "stripes" or "uv"
	Colors  []Vec3Cfg `json:"colors,omitempty"`
	Scale   float64   `json:"scale"`
	Offset  float64   `json:"offset,omitempty"`
}

type SurfaceCfg struct {
	Type         string  `json:"type,omitempty"` // "diffusive" (default), "reflective" or "refractive"
	Reflectivity float64 `json:"reflectivity,omitempty"`
	Transparency float64 `json:"transparency,omitempty"`
	Index        float64 `json:"index,omitempty"`
}

type LightCfg struct {
	Type      string  `json:"type"` // "directional" or "spherical"
	Direction Vec3Cfg `json:"direction,omitempty"`
	Position  Vec3Cfg `json:"position,omitempty"`
	Color     Vec3Cfg `json:"color"`
	Intensity float64 `json:"intensity"`
}

// LoadSceneFile reads and builds a JSON scene file. Texture paths are
// resolved relative to the file's directory.
func LoadSceneFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	s, err := cfg.Build(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return s, nil
}

// ParseConfig decodes a scene config, rejecting unknown fields
func ParseConfig(data []byte) (*Config, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Build validates the config and constructs the scene
func (c *Config) Build(baseDir string) (*Scene, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if len(c.Primitives) == 0 {
		return nil, fmt.Errorf("config has no primitives")
	}

	s := NewScene(c.Width, c.Height, c.FOV)
	if c.MaxRecursionDepth > 0 {
		s.MaxRecursionDepth = c.MaxRecursionDepth
	}
	if c.ShadowBias > 0 {
		s.ShadowBias = c.ShadowBias
	}

	for i, pc := range c.Primitives {
		p, err := pc.Build(baseDir)
		if err != nil {
			return nil, fmt.Errorf("primitives[%d]: %w", i, err)
		}
		s.Add(p)
	}
	for i, lc := range c.Lights {
		l, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("lights[%d]: %w", i, err)
		}
		s.AddLight(l)
	}
	return s, nil
}

func (pc PrimitiveCfg) Build(baseDir string) (geometry.Primitive, error) {
	mat, err := pc.Material.Build(baseDir)
	if err != nil {
		return nil, fmt.Errorf("material: %w", err)
	}
	switch pc.Type {
	case "sphere":
		if pc.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be > 0, got %g", pc.Radius)
		}
		return geometry.NewSphere(pc.Center.point(), pc.Radius, mat), nil
	case "plane":
		if pc.Normal.isZero() {
			return nil, fmt.Errorf("plane normal must be non-zero")
		}
		return geometry.NewPlane(pc.Origin.point(), pc.Normal.vector(), mat), nil
	default:
		return nil, fmt.Errorf("unknown primitive type %q", pc.Type)
	}
}

func (mc MaterialCfg) Build(baseDir string) (*material.Material, error) {
	surface, err := mc.Surface.Build()
	if err != nil {
		return nil, err
	}

	albedo := mc.Albedo
	if albedo == 0 {
		albedo = material.DefaultAlbedo
	}
	if albedo < 0 || albedo > 1 {
		return nil, fmt.Errorf("albedo must be in (0, 1], got %g", albedo)
	}

	switch {
	case mc.Color != nil && mc.Texture != nil:
		return nil, fmt.Errorf("color and texture are mutually exclusive")
	case mc.Color != nil:
		return material.FromColor(mc.Color.color(), albedo, surface), nil
	case mc.Texture != nil:
		tex, err := mc.Texture.Build(baseDir)
		if err != nil {
			return nil, fmt.Errorf("texture: %w", err)
		}
		return material.NewMaterial(tex, albedo, surface), nil
	default:
		return nil, fmt.Errorf("one of color or texture is required")
	}
}

func (tc TextureCfg) Build(baseDir string) (*material.Texture, error) {
	if tc.Scale == 0 {
		return nil, fmt.Errorf("scale must be non-zero")
	}

	c1, c2 := core.White, core.Black
	switch len(tc.Colors) {
	case 0:
	case 2:
		c1, c2 = tc.Colors[0].color(), tc.Colors[1].color()
	default:
		return nil, fmt.Errorf("colors needs exactly two entries, got %d", len(tc.Colors))
	}

	var img image.Image
	switch {
	case tc.Path != "" && tc.Pattern != "":
		return nil, fmt.Errorf("path and pattern are mutually exclusive")
	case tc.Path != "":
		path := tc.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		loaded, err := loaders.LoadTexture(path)
		if err != nil {
			return nil, err
		}
		img = loaded
	case tc.Pattern == "checkerboard":
		img = material.NewCheckerboardImage(256, 256, 32, c1, c2)
	case tc.Pattern == "stripes":
		img = material.NewStripeImage(256, 256, 24, c1, c2)
	case tc.Pattern == "uv":
		img = material.NewUVDebugImage(256, 256)
	default:
		return nil, fmt.Errorf("unknown texture pattern %q", tc.Pattern)
	}
	return material.NewTexture(img, tc.Scale, tc.Offset), nil
}

func (sc SurfaceCfg) Build() (material.Surface, error) {
	switch sc.Type {
	case "", "diffusive":
		return material.Diffusive{}, nil
	case "reflective":
		if sc.Reflectivity < 0 || sc.Reflectivity > 1 {
			return nil, fmt.Errorf("reflectivity must be in [0, 1], got %g", sc.Reflectivity)
		}
		return material.Reflective{Reflectivity: sc.Reflectivity}, nil
	case "refractive":
		if sc.Transparency < 0 || sc.Transparency > 1 {
			return nil, fmt.Errorf("transparency must be in [0, 1], got %g", sc.Transparency)
		}
		if sc.Index <= 1 {
			return nil, fmt.Errorf("refractive index must be > 1, got %g", sc.Index)
		}
		return material.Refractive{Transparency: sc.Transparency, Index: sc.Index}, nil
	default:
		return nil, fmt.Errorf("unknown surface type %q", sc.Type)
	}
}

func (lc LightCfg) Build() (lights.Light, error) {
	if lc.Intensity < 0 || math.IsNaN(lc.Intensity) {
		return nil, fmt.Errorf("intensity must be >= 0, got %g", lc.Intensity)
	}
	switch lights.LightType(lc.Type) {
	case lights.LightTypeDirectional:
		if lc.Direction.isZero() {
			return nil, fmt.Errorf("directional light needs a non-zero direction")
		}
		return lights.NewDirectional(lc.Direction.vector(), lc.Color.color(), lc.Intensity), nil
	case lights.LightTypeSpherical:
		return lights.NewSpherical(lc.Position.point(), lc.Color.color(), lc.Intensity), nil
	default:
		return nil, fmt.Errorf("unknown light type %q", lc.Type)
	}
}
