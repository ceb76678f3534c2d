package csharp

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/sharpgen/sharpgen/ir"
)

// paramShape classifies union parameters with fixed dual-parameter
// expansions. These always produce exactly two sibling parameters, never a
// generic N-way explosion.
type paramShape int

const (
	shapeNone paramShape = iota
	shapeStringOrPath
	shapeBoolOrStringList
)

func classifyParamShape(u *ir.UnionNode) paramShape {
	switch u.Expression() {
	case "string|path":
		return shapeStringOrPath
	case "boolean|Array<string>":
		return shapeBoolOrStringList
	}
	return shapeNone
}

// paramDecl is one rendered method parameter.
type paramDecl struct {
	Name    string
	Type    string
	Default string // empty for required parameters
	Doc     string
	DocKey  string

	// slot marks the placeholder for an exploding union parameter.
	slot bool
}

// explosion describes the one union parameter of a method that must be
// expanded into multiple overloads.
type explosion struct {
	index    int // position of the placeholder in the parameter list
	optional bool
	variants []paramDecl // one parameter per union variant, in union order
}

// buildParams translates the (already flattened) parameter list of m.
// At most one parameter may be an exploding union; the returned explosion
// is nil when every parameter translated to a single type.
func (r *renderer) buildParams(m *ir.MemberNode, args []*ir.MemberNode) ([]paramDecl, *explosion, error) {
	var params []paramDecl
	var exp *explosion

	for _, a := range args {
		display := a.DisplayName()
		chain := []string{r.enclosing, m.DisplayName(), display}
		tctx := TypeContext{Enclosing: r.enclosing, Member: m, Chain: chain}
		fallback := r.fallbackFor(chain)

		typ, ok, err := r.tr.Translate(a.Type, tctx, fallback)
		if err != nil {
			return nil, nil, err
		}
		pname := escapeReservedWord(camelize(display))

		if ok {
			p := paramDecl{Name: pname, Type: typ, Doc: a.Documentation.Summary, DocKey: pname}
			switch {
			case a.Name == "timeout" && typ == "decimal":
				// Timeouts are integral milliseconds with an explicit
				// zero default, regardless of optionality.
				p.Type = "int"
				p.Default = "0"
			case !a.Required:
				p.Default = "default"
			}
			params = append(params, p)
			continue
		}

		u := a.Type.(*ir.UnionNode)
		switch classifyParamShape(u) {
		case shapeStringOrPath:
			params = append(params,
				paramDecl{Name: pname, Type: "string", Default: optionalDefault(a), Doc: a.Documentation.Summary, DocKey: pname},
				paramDecl{Name: pname + "Path", Type: "string", Default: "default",
					Doc: "Alternative: load from this file instead.", DocKey: pname + "Path"})
		case shapeBoolOrStringList:
			params = append(params,
				paramDecl{Name: pname, Type: "bool", Default: optionalDefault(a), Doc: a.Documentation.Summary, DocKey: pname},
				paramDecl{Name: pname + "Values", Type: "IEnumerable<string>", Default: "default",
					Doc: "Meaningful only when the flag is true.", DocKey: pname + "Values"})
		default:
			if exp != nil {
				return nil, nil, errors.Mark(
					errors.Newf("unsupported union combination: %s.%s has more than one union parameter",
						r.enclosing, m.DisplayName()),
					ErrOverload)
			}
			variants, err := r.explodeVariants(u, a, pname, tctx, fallback)
			if err != nil {
				return nil, nil, err
			}
			exp = &explosion{index: len(params), optional: !a.Required, variants: variants}
			params = append(params, paramDecl{Name: pname, slot: true})
		}
	}

	if err := checkDocKeys(params, exp, r.enclosing, m.DisplayName()); err != nil {
		return nil, nil, err
	}
	return params, exp, nil
}

// explodeVariants translates each union variant into its own parameter.
// The parameter keeps its original name in every overload (signatures
// differ by type); the capitalized type tag disambiguates the per-variant
// documentation key.
func (r *renderer) explodeVariants(u *ir.UnionNode, a *ir.MemberNode, pname string, tctx TypeContext, fallback NameFallback) ([]paramDecl, error) {
	var variants []paramDecl
	for _, v := range u.Variants {
		if ir.IsNull(v) {
			continue
		}
		typ, ok, err := r.tr.Translate(v, tctx, fallback)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Mark(
				errors.Newf("union variant cannot be expressed as one type: %s", v.Expression()),
				ErrOverload)
		}
		p := paramDecl{
			Name:   pname,
			Type:   typ,
			Doc:    a.Documentation.Summary,
			DocKey: pname + tagForType(typ),
		}
		if !a.Required {
			p.Default = "default"
		}
		variants = append(variants, p)
	}
	if len(variants) == 0 {
		return nil, errors.Mark(
			errors.Newf("union with no expressible variants: %s", u.Expression()), ErrOverload)
	}
	return variants, nil
}

// expandOverloads produces the final parameter list of every overload:
// one per union variant, substituting only the union slot while all other
// parameters keep their declaration order, plus (for optional unions) one
// overload omitting the union entirely so optional-parameter overload
// resolution stays unambiguous.
func expandOverloads(params []paramDecl, exp *explosion) [][]paramDecl {
	if exp == nil {
		return [][]paramDecl{params}
	}
	var out [][]paramDecl
	for _, v := range exp.variants {
		sig := make([]paramDecl, len(params))
		copy(sig, params)
		sig[exp.index] = v
		out = append(out, sig)
	}
	if exp.optional {
		sig := make([]paramDecl, 0, len(params)-1)
		sig = append(sig, params[:exp.index]...)
		sig = append(sig, params[exp.index+1:]...)
		out = append(out, sig)
	}
	return out
}

// checkDocKeys rejects duplicate parameter-documentation keys within one
// rendered member.
func checkDocKeys(params []paramDecl, exp *explosion, enclosing, member string) error {
	seen := make(map[string]bool)
	record := func(key string) error {
		if key == "" {
			return nil
		}
		if seen[key] {
			return errors.Mark(
				errors.Newf("duplicate parameter documentation key %q in %s.%s", key, enclosing, member),
				ErrOverload)
		}
		seen[key] = true
		return nil
	}
	for _, p := range params {
		if p.slot {
			continue
		}
		if err := record(p.DocKey); err != nil {
			return err
		}
	}
	if exp != nil {
		for _, v := range exp.variants {
			if err := record(v.DocKey); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatParams(params []paramDecl) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		s := p.Type + " " + p.Name
		if p.Default != "" {
			s += " = " + p.Default
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func optionalDefault(a *ir.MemberNode) string {
	if a.Required {
		return ""
	}
	return "default"
}
