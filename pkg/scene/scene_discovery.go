package scene

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name used to select the scene
	DisplayName string
	Description string
	Group       string
}

// sceneFactory builds a scene from a random stream and external options
type sceneFactory func(random *rand.Rand, opts Options) (*Scene, error)

type sceneEntry struct {
	info    SceneInfo
	factory sceneFactory
}

var registry = map[string]sceneEntry{
	"random": {
		SceneInfo{Description: "Random field of diffuse, metal and glass spheres with motion blur", Group: "Spheres"},
		NewRandomScene,
	},
	"checker": {
		SceneInfo{Description: "Two checkered spheres", Group: "Textures"},
		NewCheckerScene,
	},
	"perlin": {
		SceneInfo{Description: "Spheres textured with grey Perlin turbulence", Group: "Textures"},
		NewPerlinScene,
	},
	"earth": {
		SceneInfo{Description: "Image-textured globe", Group: "Textures"},
		NewEarthScene,
	},
	"simple-light": {
		SceneInfo{Description: "Turbulence-textured spheres lit by a graded panel and a sphere light", Group: "Lights"},
		NewSimpleLightScene,
	},
	"cornell": {
		SceneInfo{Description: "Cornell box with an aluminum block and a glass sphere", Group: "Cornell Box"},
		NewCornellScene,
	},
	"cornell-smoke": {
		SceneInfo{Description: "Cornell box with blocks of smoke", Group: "Cornell Box"},
		NewCornellSmokeScene,
	},
	"final": {
		SceneInfo{Description: "Showcase of every primitive, material and medium", Group: "Showcase"},
		NewFinalScene,
	},
	"mesh": {
		SceneInfo{Description: "Textured triangle mesh, optionally loaded from a PLY file", Group: "Showcase"},
		NewMeshScene,
	},
}

// ListScenes returns every built-in scene, sorted by group then ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for id, entry := range registry {
		info := entry.info
		info.ID = id
		info.DisplayName = titleCase(id)
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		if scenes[i].Group != scenes[j].Group {
			return scenes[i].Group < scenes[j].Group
		}
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// SceneNames returns the IDs of every built-in scene in sorted order
func SceneNames() []string {
	names := make([]string, 0, len(registry))
	for id := range registry {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// NewSceneByName builds the named scene
func NewSceneByName(name string, random *rand.Rand, opts Options) (*Scene, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(SceneNames(), ", "))
	}
	return entry.factory(random, opts)
}

// titleCase converts a scene ID to title case
// e.g., "cornell-smoke" -> "Cornell Smoke"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
