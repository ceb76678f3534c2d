// Package provider loads the language-agnostic API description produced by
// the upstream documentation parser and builds the abstract type tree.
package provider

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/sharpgen/sharpgen/ir"
)

// Document is the root of the API description file.
type Document struct {
	Classes []ClassDef `json:"classes" validate:"required,min=1,dive"`
}

// ClassDef describes one API class.
type ClassDef struct {
	Name    string      `json:"name" validate:"required"`
	Extends string      `json:"extends,omitempty"`
	Comment string      `json:"comment,omitempty"`
	Members []MemberDef `json:"members" validate:"dive"`
}

// MemberDef describes one class member or method parameter.
type MemberDef struct {
	Kind     string      `json:"kind" validate:"omitempty,oneof=method property event"`
	Name     string      `json:"name" validate:"required"`
	Alias    string      `json:"alias,omitempty"`
	Required bool        `json:"required"`
	Async    bool        `json:"async,omitempty"`
	Type     *TypeDef    `json:"type,omitempty"`
	Args     []MemberDef `json:"args,omitempty" validate:"dive"`
	Comment  string      `json:"comment,omitempty"`
}

// TypeDef describes one type expression. The upstream parser emits a loose
// shape: which fields are populated determines the type-tree variant.
type TypeDef struct {
	Name       string      `json:"name,omitempty"`
	Expression string      `json:"expression,omitempty"`
	Union      []TypeDef   `json:"union,omitempty"`
	Templates  []TypeDef   `json:"templates,omitempty"`
	Properties []MemberDef `json:"properties,omitempty" validate:"dive"`
	Args       []TypeDef   `json:"args,omitempty"`
	ReturnType *TypeDef    `json:"returnType,omitempty"`
}

// primitiveNames are source names that decode to primitive nodes.
var primitiveNames = map[string]bool{
	"string": true, "boolean": true, "number": true, "float": true,
	"int": true, "void": true, "null": true, "undefined": true,
	"Buffer": true, "binary": true, "Serializable": true, "Any": true,
	"any": true, "Error": true,
}

// Load reads, validates, and converts an API description file.
func Load(path string) ([]*ir.ClassNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open api description %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes an API description from r.
func Parse(r io.Reader) ([]*ir.ClassNode, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode api description")
	}
	if err := validator.New().Struct(&doc); err != nil {
		return nil, errors.Wrap(err, "invalid api description")
	}
	return Build(&doc)
}

// Build converts a validated document into the type tree.
func Build(doc *Document) ([]*ir.ClassNode, error) {
	classes := make([]*ir.ClassNode, 0, len(doc.Classes))
	for i := range doc.Classes {
		c, err := buildClass(&doc.Classes[i])
		if err != nil {
			return nil, errors.Wrapf(err, "class %s", doc.Classes[i].Name)
		}
		classes = append(classes, c)
	}
	return classes, nil
}

func buildClass(def *ClassDef) (*ir.ClassNode, error) {
	members := make([]*ir.MemberNode, 0, len(def.Members))
	for i := range def.Members {
		m, err := buildMember(&def.Members[i], true)
		if err != nil {
			return nil, errors.Wrapf(err, "member %s", def.Members[i].Name)
		}
		members = append(members, m)
	}
	return &ir.ClassNode{
		Name:          def.Name,
		Extends:       def.Extends,
		Members:       members,
		Documentation: docFor(def.Comment),
	}, nil
}

func buildMember(def *MemberDef, topLevel bool) (*ir.MemberNode, error) {
	kind, err := memberKind(def.Kind, topLevel)
	if err != nil {
		return nil, err
	}

	var typ ir.TypeNode
	if def.Type != nil {
		typ, err = buildType(def.Type, def.Name)
		if err != nil {
			return nil, err
		}
	}

	args := make([]*ir.MemberNode, 0, len(def.Args))
	for i := range def.Args {
		a, err := buildMember(&def.Args[i], false)
		if err != nil {
			return nil, errors.Wrapf(err, "arg %s", def.Args[i].Name)
		}
		args = append(args, a)
	}

	return &ir.MemberNode{
		Name:          def.Name,
		Alias:         def.Alias,
		Kind:          kind,
		Required:      def.Required,
		Async:         def.Async,
		Type:          typ,
		Args:          args,
		Documentation: docFor(def.Comment),
	}, nil
}

// memberKind maps the wire kind string. Parameters and object properties
// omit the kind and decode as properties.
func memberKind(kind string, topLevel bool) (ir.MemberKind, error) {
	switch kind {
	case "method":
		return ir.MethodMember, nil
	case "property":
		return ir.PropertyMember, nil
	case "event":
		return ir.EventMember, nil
	case "":
		if topLevel {
			return 0, errors.New("missing member kind")
		}
		return ir.PropertyMember, nil
	}
	return 0, errors.Newf("unrecognized member kind %q", kind)
}

// buildType converts one type definition. declaredName names the nearest
// enclosing member, used as the declared name of unions and object
// literals that the source left anonymous.
func buildType(def *TypeDef, declaredName string) (ir.TypeNode, error) {
	name := def.Name
	if name == "" {
		name = declaredName
	}

	switch {
	case len(def.Union) > 0:
		variants := make([]ir.TypeNode, 0, len(def.Union))
		for i := range def.Union {
			v, err := buildType(&def.Union[i], declaredName)
			if err != nil {
				return nil, err
			}
			variants = append(variants, v)
		}
		return ir.Union(name, variants...), nil

	case len(def.Properties) > 0:
		props := make([]*ir.MemberNode, 0, len(def.Properties))
		for i := range def.Properties {
			p, err := buildMember(&def.Properties[i], false)
			if err != nil {
				return nil, errors.Wrapf(err, "property %s", def.Properties[i].Name)
			}
			props = append(props, p)
		}
		return ir.Object(def.Name, props...), nil

	case def.Name == "function" || len(def.Args) > 0 || def.ReturnType != nil:
		args := make([]ir.TypeNode, 0, len(def.Args))
		for i := range def.Args {
			a, err := buildType(&def.Args[i], declaredName)
			if err != nil {
				return nil, err
			}
			args = append(args, a)
		}
		var ret ir.TypeNode
		if def.ReturnType != nil {
			r, err := buildType(def.ReturnType, declaredName)
			if err != nil {
				return nil, err
			}
			ret = r
		}
		return ir.Function(args, ret), nil

	case len(def.Templates) > 0:
		templates := make([]ir.TypeNode, 0, len(def.Templates))
		for i := range def.Templates {
			t, err := buildType(&def.Templates[i], declaredName)
			if err != nil {
				return nil, err
			}
			templates = append(templates, t)
		}
		switch def.Name {
		case "Array":
			return ir.Array(templates...), nil
		case "Map":
			return ir.Map(templates...), nil
		}
		return ir.Generic(def.Name, templates...), nil

	case def.Name == "Object":
		// Structureless plain object: no properties, no union, no
		// templates. The generator's escape hatch decides what it means.
		return ir.Generic("Object"), nil

	case isLiteralName(def.Name) || primitiveNames[def.Name]:
		return ir.Primitive(def.Name), nil

	case def.Name != "":
		return ir.Named(def.Name), nil
	}

	return nil, errors.Newf("type definition with no shape (expression %q)", def.Expression)
}

func isLiteralName(name string) bool {
	return len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"'
}

func docFor(comment string) ir.Documentation {
	if comment == "" {
		return ir.Documentation{}
	}
	summary := comment
	for i := 0; i < len(comment); i++ {
		if comment[i] == '\n' {
			summary = comment[:i]
			break
		}
	}
	return ir.Documentation{Summary: summary, Body: comment}
}
