// Package ir defines the abstract type tree for an API surface.
// Nodes are language-agnostic, immutable representations of types that
// target-language generators transform into declarations.
package ir

import "strings"

// NodeKind identifies the variant of a type node.
type NodeKind int

const (
	KindPrimitive NodeKind = iota // Built-in primitive (string, boolean, number, ...)
	KindNamed                     // Reference to a previously declared class/type
	KindArray                     // Single-dimension ordered collection
	KindMap                       // Key-value mapping with exactly two type parameters
	KindObject                    // Structural, unnamed object literal
	KindUnion                     // Union of variants; order is significant
	KindFunction                  // Function/callback type
	KindGeneric                   // Generic container with template parameters
)

// String returns the string representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindNamed:
		return "Named"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindObject:
		return "Object"
	case KindUnion:
		return "Union"
	case KindFunction:
		return "Function"
	case KindGeneric:
		return "Generic"
	default:
		return "Unknown"
	}
}

// TypeNode is the sealed interface over all type-tree variants.
type TypeNode interface {
	// Kind returns the node kind for type switching.
	Kind() NodeKind

	// Expression returns the canonical textual signature of the node.
	// It is used for exact-match translation rules and for structural
	// equality: two nodes are equal iff their expressions and nested
	// structures match.
	Expression() string

	// Ensure only types in this package can implement TypeNode.
	sealed()
}

// PrimitiveNode is a built-in primitive type or a quoted string literal.
type PrimitiveNode struct {
	// Name is the source-language type name, e.g. "string", "boolean",
	// or a quoted literal such as `"mixed"`.
	Name string
}

// Kind returns KindPrimitive.
func (n *PrimitiveNode) Kind() NodeKind { return KindPrimitive }

// Expression returns the primitive name.
func (n *PrimitiveNode) Expression() string { return n.Name }

// IsLiteral reports whether the node is a quoted string literal.
func (n *PrimitiveNode) IsLiteral() bool {
	return len(n.Name) >= 2 && strings.HasPrefix(n.Name, `"`) && strings.HasSuffix(n.Name, `"`)
}

// LiteralValue returns the de-quoted literal value.
// Returns the bare name for non-literal primitives.
func (n *PrimitiveNode) LiteralValue() string {
	if n.IsLiteral() {
		return n.Name[1 : len(n.Name)-1]
	}
	return n.Name
}

func (*PrimitiveNode) sealed() {}

// Primitive returns a PrimitiveNode for the given name.
func Primitive(name string) *PrimitiveNode {
	return &PrimitiveNode{Name: name}
}

// NamedNode is a reference to a previously declared class or type.
type NamedNode struct {
	Name string
}

// Kind returns KindNamed.
func (n *NamedNode) Kind() NodeKind { return KindNamed }

// Expression returns the referenced name.
func (n *NamedNode) Expression() string { return n.Name }

func (*NamedNode) sealed() {}

// Named returns a NamedNode referencing the given declaration.
func Named(name string) *NamedNode {
	return &NamedNode{Name: name}
}

// ArrayNode is an ordered collection. A well-formed array carries exactly
// one template parameter; any other arity is a shape error that generators
// must reject.
type ArrayNode struct {
	Templates []TypeNode
}

// Kind returns KindArray.
func (n *ArrayNode) Kind() NodeKind { return KindArray }

// Expression returns "Array<element>".
func (n *ArrayNode) Expression() string {
	return "Array<" + joinExpressions(n.Templates, ", ") + ">"
}

func (*ArrayNode) sealed() {}

// Array returns an ArrayNode over the given template parameters.
func Array(templates ...TypeNode) *ArrayNode {
	return &ArrayNode{Templates: templates}
}

// MapNode is a key-value mapping. A well-formed map carries exactly two
// template parameters; any other arity is a shape error.
type MapNode struct {
	Templates []TypeNode
}

// Kind returns KindMap.
func (n *MapNode) Kind() NodeKind { return KindMap }

// Expression returns "Map<key, value>".
func (n *MapNode) Expression() string {
	return "Map<" + joinExpressions(n.Templates, ", ") + ">"
}

func (*MapNode) sealed() {}

// Map returns a MapNode over the given template parameters.
func Map(templates ...TypeNode) *MapNode {
	return &MapNode{Templates: templates}
}

// ObjectNode is a structural object literal. Name carries the declared
// name when the source gave the shape one; it may be empty.
type ObjectNode struct {
	Name       string
	Properties []*MemberNode
}

// Kind returns KindObject.
func (n *ObjectNode) Kind() NodeKind { return KindObject }

// Expression returns "Object" for structureless objects, otherwise the
// property list in declaration order: "Object{a: string, b: number}".
func (n *ObjectNode) Expression() string {
	if len(n.Properties) == 0 {
		return "Object"
	}
	var b strings.Builder
	b.WriteString("Object{")
	for i, p := range n.Properties {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		if p.Type != nil {
			b.WriteString(p.Type.Expression())
		}
	}
	b.WriteString("}")
	return b.String()
}

func (*ObjectNode) sealed() {}

// Object returns an ObjectNode with the given properties.
func Object(name string, properties ...*MemberNode) *ObjectNode {
	return &ObjectNode{Name: name, Properties: properties}
}

// UnionNode is a union of variants. Variant order is significant: the
// first variant drives null-unwrapping and enum detection.
type UnionNode struct {
	// Name is the union's declared name, used when the union becomes a
	// literal enum declaration. May be empty for anonymous unions.
	Name     string
	Variants []TypeNode
}

// Kind returns KindUnion.
func (n *UnionNode) Kind() NodeKind { return KindUnion }

// Expression returns the variants joined with "|".
func (n *UnionNode) Expression() string {
	return joinExpressions(n.Variants, "|")
}

func (*UnionNode) sealed() {}

// Union returns a UnionNode over the given variants.
func Union(name string, variants ...TypeNode) *UnionNode {
	return &UnionNode{Name: name, Variants: variants}
}

// FunctionNode is a function/callback type. Return is nil when the source
// declares no return type.
type FunctionNode struct {
	Args   []TypeNode
	Return TypeNode
}

// Kind returns KindFunction.
func (n *FunctionNode) Kind() NodeKind { return KindFunction }

// Expression returns "function", "function(args)" or "function(args): ret".
func (n *FunctionNode) Expression() string {
	if len(n.Args) == 0 && n.Return == nil {
		return "function"
	}
	expr := "function(" + joinExpressions(n.Args, ", ") + ")"
	if n.Return != nil {
		expr += ": " + n.Return.Expression()
	}
	return expr
}

func (*FunctionNode) sealed() {}

// Function returns a FunctionNode with the given arguments and return type.
// Pass nil ret for functions with no declared return type.
func Function(args []TypeNode, ret TypeNode) *FunctionNode {
	return &FunctionNode{Args: args, Return: ret}
}

// GenericNode is a generic container instantiation, e.g. Object<string, string>.
type GenericNode struct {
	Name      string
	Templates []TypeNode
}

// Kind returns KindGeneric.
func (n *GenericNode) Kind() NodeKind { return KindGeneric }

// Expression returns "Name<t1, t2>" or the bare name without templates.
func (n *GenericNode) Expression() string {
	if len(n.Templates) == 0 {
		return n.Name
	}
	return n.Name + "<" + joinExpressions(n.Templates, ", ") + ">"
}

func (*GenericNode) sealed() {}

// Generic returns a GenericNode with the given template parameters.
func Generic(name string, templates ...TypeNode) *GenericNode {
	return &GenericNode{Name: name, Templates: templates}
}

// IsNull reports whether the node is the null/absence marker.
func IsNull(t TypeNode) bool {
	switch n := t.(type) {
	case *PrimitiveNode:
		return n.Name == "null" || n.Name == "undefined"
	case *NamedNode:
		return n.Name == "null" || n.Name == "undefined"
	}
	return false
}

// Equal reports whether two nodes are structurally equal: same kind, same
// canonical expression, and equal nested structure.
func Equal(a, b TypeNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() || a.Expression() != b.Expression() {
		return false
	}
	switch an := a.(type) {
	case *ObjectNode:
		bn := b.(*ObjectNode)
		if len(an.Properties) != len(bn.Properties) {
			return false
		}
		for i := range an.Properties {
			ap, bp := an.Properties[i], bn.Properties[i]
			if ap.Name != bp.Name || ap.Required != bp.Required || !Equal(ap.Type, bp.Type) {
				return false
			}
		}
	case *UnionNode:
		bn := b.(*UnionNode)
		if len(an.Variants) != len(bn.Variants) {
			return false
		}
		for i := range an.Variants {
			if !Equal(an.Variants[i], bn.Variants[i]) {
				return false
			}
		}
	}
	return true
}

func joinExpressions(nodes []TypeNode, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		parts = append(parts, n.Expression())
	}
	return strings.Join(parts, sep)
}
