// Package csharp implements the type translation and name synthesis engine
// targeting C#. It walks the abstract type tree of an API surface and
// produces binding interface, model type, and enum declarations.
package csharp

import (
	"bytes"
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/sharpgen/sharpgen/ir"
)

// Generator transforms an API description into C# declarations.
type Generator struct{}

// Name returns the generator's identifier.
func (g *Generator) Name() string { return "csharp" }

// Generate runs the full two-phase pass over classes: translation first
// (populating the model and enum registries), then emission of classes,
// synthesized model types, and enums, in that order. Any error aborts the
// run; partially translated output is never written.
func (g *Generator) Generate(ctx context.Context, classes []*ir.ClassNode, opts GenerateOptions) (*GenerateResult, error) {
	cfg := applyGeneratorDefaults(opts.Config)
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	reg := NewRegistry()
	for _, c := range classes {
		reg.AddClass(c.Name)
	}
	tr := NewTranslator(reg, cfg, log)
	nm := NewNamer(reg)

	// Phase 1: translate every class and member. All registries reach
	// their class-driven fixed point before anything is emitted.
	var classDecls []ClassDecl
	for _, c := range classes {
		decl, err := g.renderClass(tr, nm, cfg, c)
		if err != nil {
			return nil, errors.Wrapf(err, "class %s", c.Name)
		}
		classDecls = append(classDecls, decl)
	}

	// Phase 2: emit synthesized model types. Rendering a model's
	// properties can synthesize nested models, which append to the
	// registry and are picked up by the growing worklist.
	var modelDecls []ModelDecl
	for i := 0; i < reg.ModelCount(); i++ {
		name, t := reg.ModelAt(i)
		decl, err := g.renderModel(tr, nm, cfg, name, t)
		if err != nil {
			return nil, errors.Wrapf(err, "model %s", name)
		}
		modelDecls = append(modelDecls, decl)
	}

	// Enums last: model rendering above may still have registered some.
	var enumDecls []EnumDecl
	for _, name := range reg.EnumNames() {
		literals, _ := reg.Enum(name)
		members := make([]EnumMemberDecl, 0, len(literals))
		for _, lit := range literals {
			members = append(members, EnumMemberDecl{Name: pascalize(lit), Literal: lit})
		}
		enumDecls = append(enumDecls, EnumDecl{Name: name, Members: members})
	}

	result := &GenerateResult{
		Classes:  classDecls,
		Models:   modelDecls,
		Enums:    enumDecls,
		Warnings: tr.Warnings(),
	}

	if opts.Sink != nil {
		files, err := g.write(ctx, cfg, opts, result)
		if err != nil {
			return nil, err
		}
		result.Files = files
	}
	return result, nil
}

// renderClass renders one API class into a declaration.
func (g *Generator) renderClass(tr *Translator, nm *Namer, cfg GeneratorConfig, c *ir.ClassNode) (ClassDecl, error) {
	r := newRenderer(tr, nm, c.Name, cfg.EmitComments)

	base, err := resolveBase(tr, c.Extends)
	if err != nil {
		return ClassDecl{}, err
	}

	var lines []string
	for _, m := range c.Members {
		memberLines, err := r.renderMember(m)
		if err != nil {
			return ClassDecl{}, errors.Wrapf(err, "member %s", m.Name)
		}
		lines = append(lines, memberLines...)
	}

	return ClassDecl{
		Name:  "I" + pascalize(c.Name),
		Base:  base,
		Lines: lines,
		Doc:   c.Documentation,
	}, nil
}

// renderModel renders one synthesized model type. The registry invariant
// guarantees the registered node is object-shaped.
func (g *Generator) renderModel(tr *Translator, nm *Namer, cfg GeneratorConfig, name string, t ir.TypeNode) (ModelDecl, error) {
	obj, isObj := t.(*ir.ObjectNode)
	if !isObj {
		return ModelDecl{}, errors.Mark(
			errors.Newf("registered model %s is not object-shaped: %s", name, t.Expression()),
			ErrUnknownShape)
	}

	r := newRenderer(tr, nm, name, cfg.EmitComments)
	var lines []string
	for _, p := range obj.Properties {
		propLines, err := r.renderModelProperty(p)
		if err != nil {
			return ModelDecl{}, errors.Wrapf(err, "property %s", p.Name)
		}
		lines = append(lines, propLines...)
	}
	return ModelDecl{Name: name, Lines: lines}, nil
}

// resolveBase maps a source base-class name to the target base type.
// Bases that map to the most general object type are dropped.
func resolveBase(tr *Translator, extends string) (string, error) {
	if extends == "" {
		return "", nil
	}
	base, ok, err := tr.Translate(ir.Named(extends), TypeContext{}, nil)
	if err != nil {
		return "", err
	}
	if !ok || base == "object" {
		return "", nil
	}
	return base, nil
}

// write emits the declarations through the sink, one file per declaration
// or a single Types.cs in SingleFile mode.
func (g *Generator) write(ctx context.Context, cfg GeneratorConfig, opts GenerateOptions, result *GenerateResult) ([]OutputFile, error) {
	em := NewEmitter(cfg)

	var bodies [][]byte
	var paths []string
	for _, d := range result.Classes {
		var buf bytes.Buffer
		em.EmitClass(&buf, d)
		bodies = append(bodies, buf.Bytes())
		paths = append(paths, d.Name+".cs")
	}
	for _, d := range result.Models {
		var buf bytes.Buffer
		em.EmitModel(&buf, d)
		bodies = append(bodies, buf.Bytes())
		paths = append(paths, d.Name+".cs")
	}
	for _, d := range result.Enums {
		var buf bytes.Buffer
		em.EmitEnum(&buf, d)
		bodies = append(bodies, buf.Bytes())
		paths = append(paths, d.Name+".cs")
	}

	var files []OutputFile
	if cfg.SingleFile {
		content := em.File(bodies...)
		if err := opts.Sink.WriteFile(ctx, "Types.cs", content); err != nil {
			return nil, errors.Wrap(err, "write Types.cs")
		}
		return []OutputFile{{Path: "Types.cs", Size: int64(len(content))}}, nil
	}
	for i, body := range bodies {
		content := em.File(body)
		if err := opts.Sink.WriteFile(ctx, paths[i], content); err != nil {
			return nil, errors.Wrapf(err, "write %s", paths[i])
		}
		files = append(files, OutputFile{Path: paths[i], Size: int64(len(content))})
	}
	return files, nil
}

// applyGeneratorDefaults fills unset configuration fields.
func applyGeneratorDefaults(cfg GeneratorConfig) GeneratorConfig {
	if cfg.Namespace == "" {
		cfg.Namespace = "Api"
	}
	return cfg
}
