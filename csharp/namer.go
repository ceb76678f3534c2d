package csharp

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/sharpgen/sharpgen/ir"
)

// pluralExceptions lists candidate names that are plural by nature and must
// not have a trailing "s" stripped.
var pluralExceptions = map[string]bool{
	"Bounds":      true,
	"Credentials": true,
}

// nameAliases fixes irregular results of the mechanical singularization and
// casing steps.
var nameAliases = map[string]string{
	"Propertie": "Property",
	"Entrie":    "Entry",
	"Viewport":  "ViewportSize",
}

// reservedModelNames can never be claimed by a synthesized model type; a
// candidate landing on one is treated as a collision and disambiguated.
var reservedModelNames = map[string]bool{
	"String":  true,
	"Boolean": true,
	"Number":  true,
	"Error":   true,
	"Event":   true,
	"Task":    true,
}

// Namer synthesizes stable, collision-free names for anonymous structural
// types, registering each accepted name in the model registry.
//
// Synthesis is order-dependent: whichever type first claims a candidate name
// owns the plain form, and later structurally different types at the same
// candidate are pushed into longer, disambiguated names. Reordering member
// traversal can therefore change output names. Existing consumers depend on
// the names produced by the current traversal order, so this behavior is
// pinned under test rather than fixed.
type Namer struct {
	reg *Registry
}

// NewNamer returns a namer registering into reg.
func NewNamer(reg *Registry) *Namer {
	return &Namer{reg: reg}
}

// Synthesize derives a unique declaration name for t from the lexical
// display-name chain [enclosingTypeName, memberDisplayName,
// innerTypeDisplayName]. Accepting a candidate registers t under it, except
// for names in the built-in primitive escape set.
func (nm *Namer) Synthesize(t ir.TypeNode, chain []string) (string, error) {
	// A plain object with no structure and no union needs no declaration;
	// it is the generic object and is never registered.
	if obj, isObj := t.(*ir.ObjectNode); isObj && len(obj.Properties) == 0 {
		return "object", nil
	}

	stack := make([]string, 0, len(chain))
	for _, c := range chain {
		if c == "" {
			continue
		}
		stack = append(stack, pascalize(c))
	}
	// Drop a doubled innermost candidate so Foo.foo does not become FooFoo.
	if len(stack) >= 2 && stack[len(stack)-1] == stack[len(stack)-2] {
		stack = stack[:len(stack)-1]
	}
	if len(stack) == 0 {
		return "", errors.Mark(
			errors.Newf("no lexical context to name type: %s", t.Expression()), ErrNaming)
	}

	candidate := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	for {
		name := normalizeCandidate(candidate)
		if !reservedModelNames[name] {
			existing, taken := nm.reg.Model(name)
			if !taken {
				if !primitiveEscapes[name] && name != "Object" {
					nm.reg.RegisterModel(name, t)
				}
				return name, nil
			}
			if ir.Equal(existing, t) {
				return name, nil
			}
		}
		// Conflict: prepend the next outer lexical element and retry.
		if len(stack) == 0 {
			return "", errors.Mark(
				errors.Newf("ran out of possible names for %s (last candidate %q)", t.Expression(), name),
				ErrNaming)
		}
		candidate = stack[len(stack)-1] + name
		stack = stack[:len(stack)-1]
	}
}

// normalizeCandidate strips a single trailing plural "s" (unless the name
// is plural by nature) and applies the manual alias fixes.
func normalizeCandidate(c string) string {
	if strings.HasSuffix(c, "s") && !pluralExceptions[c] {
		c = strings.TrimSuffix(c, "s")
	}
	if alias, ok := nameAliases[c]; ok {
		return alias
	}
	return c
}
