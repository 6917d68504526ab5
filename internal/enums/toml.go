package enums

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// enumsFile is the on-disk shape of an --enums declaration file:
//
//	[[enum]]
//	name = "MyProjectSelector"
//	values = ["FIRST", "SECOND"]
type enumsFile struct {
	Enum []enumDecl `toml:"enum"`
}

type enumDecl struct {
	Name   string   `toml:"name"`
	Values []string `toml:"values"`
}

// LoadTOML registers every enum declared in path into r, in file order.
func (r *Registry) LoadTOML(path string) error {
	var f enumsFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return fmt.Errorf("enum declarations %s: %w", path, err)
	}
	for _, decl := range f.Enum {
		if err := r.Register(decl.Name, decl.Values); err != nil {
			return fmt.Errorf("enum declarations %s: %w", path, err)
		}
	}
	return nil
}
