package scene

import (
	"fmt"
	"sort"
	"strings"
)

// Builder constructs a scene for the given aspect ratio
type Builder func(aspectRatio float64) *Scene

var builtins = map[string]Builder{
	"default":    NewDefaultScene,
	"spheregrid": NewSphereGridScene,
}

// BuiltinNames lists the built-in scene names in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin creates a built-in scene by name
func Builtin(name string, aspectRatio float64) (*Scene, error) {
	build, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return build(aspectRatio), nil
}
