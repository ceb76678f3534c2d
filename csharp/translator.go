package csharp

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/sharpgen/sharpgen/ir"
)

// TypeContext carries the lexical position of the node being translated.
type TypeContext struct {
	// Enclosing is the name of the class or model type being rendered.
	Enclosing string

	// Member is the enclosing member, nil for top-level model types.
	Member *ir.MemberNode

	// Chain is the lexical display-name chain used for name synthesis:
	// [enclosingTypeName, memberDisplayName, innerTypeDisplayName].
	Chain []string
}

// NameFallback derives a declaration name for a type that must become its
// own declaration, registering it as a side effect.
type NameFallback func(t ir.TypeNode) (string, error)

// Translator maps type-tree nodes to C# type expressions, consulting and
// populating the registry as it encounters types that need declarations.
type Translator struct {
	reg      *Registry
	cfg      GeneratorConfig
	log      *zap.SugaredLogger
	warnings []ir.Warning
}

// NewTranslator returns a translator writing synthesized types into reg.
func NewTranslator(reg *Registry, cfg GeneratorConfig, log *zap.SugaredLogger) *Translator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Translator{reg: reg, cfg: cfg, log: log}
}

// Warnings returns the diagnostics accumulated so far.
func (tr *Translator) Warnings() []ir.Warning {
	return tr.warnings
}

// Translate maps a type-tree node to a C# type expression.
//
// ok is false (with a nil error) when the node is a union that cannot be
// expressed as a single C# type: the caller must explode it into overloads.
// Any returned error is fatal to the generation run.
func (tr *Translator) Translate(t ir.TypeNode, tctx TypeContext, fallback NameFallback) (expr string, ok bool, err error) {
	if t == nil {
		return "void", true, nil
	}

	// Fixed-expression shortcuts bypass all general rules.
	if fs, matched := lookupFixedShape(t.Expression()); matched {
		if fs.warn != "" {
			tr.warn(fs.warn, "union collapsed to "+fs.result, t.Expression())
		}
		return fs.result, true, nil
	}

	switch n := t.(type) {
	case *ir.UnionNode:
		return tr.translateUnion(n, tctx, fallback)

	case *ir.ArrayNode:
		if len(n.Templates) != 1 {
			return "", false, errors.Mark(
				errors.Newf("array with %d type parameters: %s", len(n.Templates), t.Expression()),
				ErrShape)
		}
		elem, elemOK, err := tr.Translate(n.Templates[0], tctx, fallback)
		if err != nil {
			return "", false, err
		}
		if !elemOK {
			return "", false, errors.Mark(
				errors.Newf("array element cannot be expressed as one type: %s", t.Expression()),
				ErrShape)
		}
		return "IEnumerable<" + elem + ">", true, nil

	case *ir.MapNode:
		if len(n.Templates) != 2 {
			return "", false, errors.Mark(
				errors.Newf("map with %d type parameters: %s", len(n.Templates), t.Expression()),
				ErrShape)
		}
		key, value, err := tr.translatePair(n.Templates[0], n.Templates[1], tctx, fallback)
		if err != nil {
			return "", false, err
		}
		return "IDictionary<" + key + ", " + value + ">", true, nil

	case *ir.GenericNode:
		return tr.translateGeneric(n, tctx, fallback)

	case *ir.ObjectNode:
		return tr.translateObject(n, fallback)

	case *ir.FunctionNode:
		return tr.translateFunction(n, tctx, fallback)

	case *ir.PrimitiveNode:
		if n.IsLiteral() {
			return "string", true, nil
		}
		if mapped, hit := tr.lookupName(n.Name); hit {
			return mapped, true, nil
		}
		return n.Name, true, nil

	case *ir.NamedNode:
		if mapped, hit := tr.lookupName(n.Name); hit {
			return mapped, true, nil
		}
		if tr.reg.IsClass(n.Name) {
			return "I" + pascalize(n.Name), true, nil
		}
		return n.Name, true, nil
	}

	return "", false, errors.Mark(
		errors.Newf("unrecognized type node: %s", t.Expression()), ErrUnknownShape)
}

// translateUnion applies the general union rules, in precedence order.
func (tr *Translator) translateUnion(n *ir.UnionNode, tctx TypeContext, fallback NameFallback) (string, bool, error) {
	// Two variants led by the null marker unwrap to the second variant.
	// The optional/nullable annotation is the caller's responsibility.
	if len(n.Variants) == 2 && ir.IsNull(n.Variants[0]) {
		return tr.Translate(n.Variants[1], tctx, fallback)
	}

	// X|Array<X> collapses to a homogeneous sequence of X.
	if len(n.Variants) == 2 {
		if arr, isArr := n.Variants[1].(*ir.ArrayNode); isArr && len(arr.Templates) == 1 && ir.Equal(arr.Templates[0], n.Variants[0]) {
			elem, elemOK, err := tr.Translate(n.Variants[0], tctx, fallback)
			if err != nil {
				return "", false, err
			}
			if !elemOK {
				return "", false, errors.Mark(
					errors.Newf("sequence element cannot be expressed as one type: %s", n.Expression()),
					ErrShape)
			}
			return "IEnumerable<" + elem + ">", true, nil
		}
	}

	// Every variant a quoted literal (after an optional leading null
	// marker) makes this a literal-union enum declaration.
	variants := n.Variants
	if len(variants) > 1 && ir.IsNull(variants[0]) {
		variants = variants[1:]
	}
	if literals, isLiteral := literalValues(variants); isLiteral {
		name := n.Name
		if name == "" && len(tctx.Chain) > 0 {
			name = tctx.Chain[len(tctx.Chain)-1]
		}
		if name == "" {
			return "", false, errors.Mark(
				errors.Newf("literal union without a name: %s", n.Expression()), ErrNaming)
		}
		name = pascalize(name)
		if err := tr.reg.RegisterEnum(name, literals); err != nil {
			return "", false, errors.Mark(err, ErrNaming)
		}
		return name, true, nil
	}

	// Not expressible as a single type; the member renderer explodes it
	// into overloads.
	return "", false, nil
}

func (tr *Translator) translateGeneric(n *ir.GenericNode, tctx TypeContext, fallback NameFallback) (string, bool, error) {
	// A plain object with no structural information at all is the escape
	// hatch to the most general type.
	if n.Name == "Object" && len(n.Templates) == 0 {
		return "object", true, nil
	}

	// Two primitive-like templates: a plain object is an ordered sequence
	// of pairs, an explicit map is an associative dictionary.
	if len(n.Templates) == 2 && (n.Name == "Object" || n.Name == "Map") &&
		tr.primitiveLike(n.Templates[0]) && tr.primitiveLike(n.Templates[1]) {
		key, value, err := tr.translatePair(n.Templates[0], n.Templates[1], tctx, fallback)
		if err != nil {
			return "", false, err
		}
		if n.Name == "Map" {
			return "IDictionary<" + key + ", " + value + ">", true, nil
		}
		return "IEnumerable<KeyValuePair<" + key + ", " + value + ">>", true, nil
	}

	if len(n.Templates) == 0 {
		if mapped, hit := tr.lookupName(n.Name); hit {
			return mapped, true, nil
		}
		return n.Name, true, nil
	}

	parts := make([]string, 0, len(n.Templates))
	for _, tpl := range n.Templates {
		part, partOK, err := tr.Translate(tpl, tctx, fallback)
		if err != nil {
			return "", false, err
		}
		if !partOK {
			return "", false, errors.Mark(
				errors.Newf("template parameter cannot be expressed as one type: %s", n.Expression()),
				ErrShape)
		}
		parts = append(parts, part)
	}
	name := n.Name
	if mapped, hit := tr.lookupName(n.Name); hit {
		name = mapped
	}
	return name + "<" + strings.Join(parts, ", ") + ">", true, nil
}

func (tr *Translator) translateObject(n *ir.ObjectNode, fallback NameFallback) (string, bool, error) {
	if fallback == nil {
		return "", false, errors.Mark(
			errors.Newf("object literal with no naming context: %s", n.Expression()), ErrNaming)
	}
	name, err := fallback(n)
	if err != nil {
		return "", false, err
	}
	if name == "Object" {
		return "", false, errors.Mark(
			errors.Newf("naming context insufficient for object literal: %s", n.Expression()),
			ErrShape)
	}
	return name, true, nil
}

func (tr *Translator) translateFunction(n *ir.FunctionNode, tctx TypeContext, fallback NameFallback) (string, bool, error) {
	// No declared arguments and no expression detail collapses to the
	// simplest callback.
	if len(n.Args) == 0 && n.Return == nil {
		return "Action", true, nil
	}

	args := make([]string, 0, len(n.Args))
	for _, a := range n.Args {
		arg, argOK, err := tr.Translate(a, tctx, fallback)
		if err != nil {
			return "", false, err
		}
		if !argOK {
			return "", false, errors.Mark(
				errors.Newf("function argument cannot be expressed as one type: %s", a.Expression()),
				ErrShape)
		}
		args = append(args, arg)
	}

	ret := ""
	if n.Return != nil {
		r, retOK, err := tr.Translate(n.Return, tctx, fallback)
		if err != nil {
			return "", false, err
		}
		if !retOK {
			return "", false, errors.Mark(
				errors.Newf("function return cannot be expressed as one type: %s", n.Return.Expression()),
				ErrShape)
		}
		if r != "void" {
			ret = r
		}
	}

	if ret == "" {
		if len(args) == 0 {
			return "Action", true, nil
		}
		return "Action<" + strings.Join(args, ", ") + ">", true, nil
	}
	return "Func<" + strings.Join(append(args, ret), ", ") + ">", true, nil
}

// translatePair translates a key/value template pair, rejecting members
// that cannot be expressed as one type.
func (tr *Translator) translatePair(k, v ir.TypeNode, tctx TypeContext, fallback NameFallback) (string, string, error) {
	key, keyOK, err := tr.Translate(k, tctx, fallback)
	if err != nil {
		return "", "", err
	}
	value, valueOK, err := tr.Translate(v, tctx, fallback)
	if err != nil {
		return "", "", err
	}
	if !keyOK || !valueOK {
		return "", "", errors.Mark(
			errors.Newf("map parameter cannot be expressed as one type: %s, %s", k.Expression(), v.Expression()),
			ErrShape)
	}
	return key, value, nil
}

// lookupName resolves a source name through the configured overrides, then
// the built-in override table.
func (tr *Translator) lookupName(name string) (string, bool) {
	if mapped, ok := tr.cfg.TypeMappings[name]; ok {
		return mapped, true
	}
	mapped, ok := nameMap[name]
	return mapped, ok
}

// primitiveLike reports whether the node resolves to a primitive without
// needing a synthesized declaration.
func (tr *Translator) primitiveLike(t ir.TypeNode) bool {
	switch n := t.(type) {
	case *ir.PrimitiveNode:
		return true
	case *ir.NamedNode:
		_, ok := tr.lookupName(n.Name)
		return ok
	}
	return false
}

func (tr *Translator) warn(code, message, subject string) {
	tr.log.Warnw(message, "code", code, "type", subject)
	tr.warnings = append(tr.warnings, ir.Warning{Code: code, Message: message, Subject: subject})
}

// literalValues returns the de-quoted literal values when every variant is
// a quoted string literal.
func literalValues(variants []ir.TypeNode) ([]string, bool) {
	if len(variants) == 0 {
		return nil, false
	}
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		p, isPrim := v.(*ir.PrimitiveNode)
		if !isPrim || !p.IsLiteral() {
			return nil, false
		}
		out = append(out, p.LiteralValue())
	}
	return out, true
}
