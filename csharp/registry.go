package csharp

import (
	"github.com/cockroachdb/errors"

	"github.com/sharpgen/sharpgen/ir"
)

// Registry holds the mutable name/type tables populated during the
// translation pass and read back during emission. It has a strict two-phase
// lifecycle: entries are appended while classes and members are translated,
// never mutated or removed, and consumed read-only afterwards. The registry
// is an explicit object threaded through the generator rather than package
// state, so every generation run (and every test) starts clean.
type Registry struct {
	modelNames []string
	models     map[string]ir.TypeNode

	enumNames []string
	enums     map[string][]string

	classes map[string]bool
}

// NewRegistry returns a registry seeded with the well-known enums that
// exist before any union is ever translated.
func NewRegistry() *Registry {
	r := &Registry{
		models:  make(map[string]ir.TypeNode),
		enums:   make(map[string][]string),
		classes: make(map[string]bool),
	}
	// The tri-state attribute value predates translation: boolean|"mixed"
	// shapes resolve to it by fixed rule.
	_ = r.RegisterEnum("MixedState", []string{"on", "off", "mixed"})
	return r
}

// AddClass records a declared API class name. Translated references to it
// resolve to the binding interface name instead of a bare pass-through.
func (r *Registry) AddClass(name string) {
	r.classes[name] = true
}

// IsClass reports whether name is a declared API class.
func (r *Registry) IsClass(name string) bool {
	return r.classes[name]
}

// RegisterModel records a synthesized model type under name. Collisions are
// resolved by the name synthesizer before insertion; registering an already
// present name is a no-op so repeat translations are idempotent.
func (r *Registry) RegisterModel(name string, t ir.TypeNode) {
	if _, ok := r.models[name]; ok {
		return
	}
	r.models[name] = t
	r.modelNames = append(r.modelNames, name)
}

// Model looks up a registered model type by name.
func (r *Registry) Model(name string) (ir.TypeNode, bool) {
	t, ok := r.models[name]
	return t, ok
}

// ModelCount returns the number of registered model types. The count can
// grow while models are being emitted: rendering a model's properties may
// synthesize nested models, which are appended and picked up by the same
// worklist loop.
func (r *Registry) ModelCount() int {
	return len(r.modelNames)
}

// ModelAt returns the i-th registered model in insertion order.
func (r *Registry) ModelAt(i int) (string, ir.TypeNode) {
	name := r.modelNames[i]
	return name, r.models[name]
}

// RegisterEnum records a literal-union enum. Registration is idempotent
// when the literal set matches the existing entry; a same-named enum with a
// different literal set is a conflict.
func (r *Registry) RegisterEnum(name string, literals []string) error {
	existing, ok := r.enums[name]
	if !ok {
		r.enums[name] = append([]string(nil), literals...)
		r.enumNames = append(r.enumNames, name)
		return nil
	}
	if len(existing) != len(literals) {
		return errors.Newf("enum %s already registered with different literals", name)
	}
	for i := range existing {
		if existing[i] != literals[i] {
			return errors.Newf("enum %s already registered with different literals", name)
		}
	}
	return nil
}

// Enum looks up a registered enum's literals by name.
func (r *Registry) Enum(name string) ([]string, bool) {
	lits, ok := r.enums[name]
	return lits, ok
}

// EnumNames returns the enum names in first-seen order.
func (r *Registry) EnumNames() []string {
	return append([]string(nil), r.enumNames...)
}
