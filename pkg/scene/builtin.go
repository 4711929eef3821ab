package scene

import (
	"fmt"
	"math/rand"
	"sort"
)

type builtinScene struct {
	description string
	create      func(random *rand.Rand) (*Scene, Settings)
}

// builtinScenes maps scene names to their constructors
var builtinScenes = map[string]builtinScene{
	"default": {
		description: "Box with five random refractive bubbles",
		create:      NewDefaultScene,
	},
	"showcase": {
		description: "Mirror, glass, box and pyramid mesh over the ground plane",
		create: func(*rand.Rand) (*Scene, Settings) {
			return NewShowcaseScene()
		},
	},
}

// BuiltinNames returns the names of the built-in scenes in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBuiltinScene creates the built-in scene with the given name
func NewBuiltinScene(name string, random *rand.Rand) (*Scene, Settings, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, Settings{}, fmt.Errorf("unknown scene %q", name)
	}
	s, settings := builtin.create(random)
	return s, settings, nil
}
