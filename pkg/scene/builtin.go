package scene

import (
	"errors"
	"fmt"
)

// ErrUnknownScene is returned for a scene name that is neither built in nor a scene file
var ErrUnknownScene = errors.New("unknown scene")

var builtinScenes = []struct {
	info SceneInfo
	create func() *Scene
}{
	{SceneInfo{ID: "default", Name: "Default Scene", Description: "Textured spheres and floor under three lights"}, NewDefaultScene},
	{SceneInfo{ID: "mirror", Name: "Mirror", Description: "Mirror sphere over a reflective floor"}, NewMirrorScene},
	{SceneInfo{ID: "glass", Name: "Glass", Description: "Glass sphere in front of a checkerboard"}, NewGlassScene},
	{SceneInfo{ID: "single", Name: "Single Sphere", Description: "One sphere lit head-on"}, NewSingleSphereScene},
}

// NewBuiltinScene creates the built-in scene with the given id
func NewBuiltinScene(id string) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.create(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// ListBuiltinScenes returns metadata for every built-in scene
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		info := b.info
		info.DisplayName = info.Name
		info.Group = GroupBuiltin
		info.Type = TypeBuiltin
		scenes = append(scenes, info)
	}
	return scenes
}
