package enums

import (
	"fmt"
)

// Registry хранит домены внешне зарегистрированных enum'ов:
// имя -> упорядоченный список энумераторов. Порядок регистрации и порядок
// значений — часть бинарного контракта перечисления мета-переменных.
type Registry struct {
	names   []string
	domains map[string][]string
}

func NewRegistry() *Registry {
	return &Registry{domains: make(map[string][]string)}
}

// Register adds an enum domain. The name must be unused and the domain
// non-empty.
func (r *Registry) Register(name string, values []string) error {
	if name == "" {
		return fmt.Errorf("enum registry: empty enum name")
	}
	if len(values) == 0 {
		return fmt.Errorf("enum registry: enum %q has an empty domain", name)
	}
	if _, dup := r.domains[name]; dup {
		return fmt.Errorf("enum registry: enum %q registered twice", name)
	}
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" {
			return fmt.Errorf("enum registry: enum %q has an empty enumerator", name)
		}
		if seen[v] {
			return fmt.Errorf("enum registry: enum %q has duplicate enumerator %q", name, v)
		}
		seen[v] = true
	}
	r.names = append(r.names, name)
	r.domains[name] = append([]string(nil), values...)
	return nil
}

// Domain returns the enumerators of name in declaration order.
func (r *Registry) Domain(name string) ([]string, bool) {
	d, ok := r.domains[name]
	return d, ok
}

// Names returns the registered enum names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Default is the process-wide registry the framework registers its selector
// enums into. Isolated registries are for tests.
var Default = NewRegistry()

func Register(name string, values []string) error {
	return Default.Register(name, values)
}

func Domain(name string) ([]string, bool) {
	return Default.Domain(name)
}
