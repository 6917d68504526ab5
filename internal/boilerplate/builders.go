package boilerplate

import (
	"pochivm/internal/jitlink"
)

// BuilderEnv is what a node-kind builder sees of the link session: just
// enough to resolve instantiation symbols to addresses.
type BuilderEnv interface {
	Lookup(name string) (jitlink.Addr, error)
}

// BuilderFunc enumerates and registers the boilerplate of one or more node
// kinds. It is the host-side body of the enumeration entry point.
type BuilderFunc func(env BuilderEnv) error

var builders []BuilderFunc

// RegisterLibraryBuilder appends fn to the library build sequence. The
// framework's node implementations call this from init functions;
// registration order is manifest order.
func RegisterLibraryBuilder(fn BuilderFunc) {
	builders = append(builders, fn)
}

// RegisteredBuilders returns the build sequence registered so far.
func RegisteredBuilders() []BuilderFunc {
	return builders
}

// BuildLibrary runs the given builders in order. Zero builders is valid
// and leaves the registry empty.
func BuildLibrary(env BuilderEnv, fns []BuilderFunc) error {
	for _, fn := range fns {
		if err := fn(env); err != nil {
			return err
		}
	}
	return nil
}
