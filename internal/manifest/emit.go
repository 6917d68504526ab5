// Package manifest renders the resolved registry: the textual table on
// standard output and the serialized payload written to the object path.
package manifest

import (
	"fmt"
	"io"

	"pochivm/internal/boilerplate"
)

// Write emits the textual manifest: one header line per pack in
// registration order, then one four-space-indented symbol line per
// instance in enumeration order. The line order is a public contract;
// downstream code indexes into it positionally.
func Write(w io.Writer, reg *boilerplate.Registry) error {
	for _, e := range reg.Entries() {
		if _, err := fmt.Fprintf(w, "%s:\n", e.Kind); err != nil {
			return err
		}
		for _, inst := range e.Pack.Instances {
			if _, err := fmt.Fprintf(w, "    %s\n", inst.SymbolName); err != nil {
				return err
			}
		}
	}
	return nil
}
