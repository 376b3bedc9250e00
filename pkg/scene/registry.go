package scene

import "fmt"

// builders maps scene names to their constructors
var builders = map[string]func() *Scene{
	"default": NewDefaultScene,
	"glass":   NewGlassScene,
	"mirrors": NewMirrorScene,
}

// Names returns the names of the built-in scenes
func Names() []string {
	return []string{"default", "glass", "mirrors"}
}

// ByName constructs a built-in scene by name
func ByName(name string) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: default, glass, mirrors)", name)
	}
	return builder(), nil
}
