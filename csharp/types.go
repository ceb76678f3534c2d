package csharp

import (
	"go.uber.org/zap"

	"github.com/sharpgen/sharpgen/ir"
	"github.com/sharpgen/sharpgen/sink"
)

// GenerateOptions configures one generation run.
type GenerateOptions struct {
	// Sink receives generated output files.
	Sink sink.OutputSink

	// Config contains generator configuration.
	Config GeneratorConfig

	// Log receives diagnostic warnings. Defaults to a no-op logger.
	Log *zap.SugaredLogger
}

// GeneratorConfig provides the configuration knobs of the C# generator.
type GeneratorConfig struct {
	// Namespace is the C# namespace wrapping every declaration.
	// Default: "Api".
	Namespace string

	// SingleFile emits all declarations into one Types.cs file instead of
	// one file per declaration.
	SingleFile bool

	// EmitComments includes XML doc summaries in the output.
	EmitComments bool

	// TypeMappings overrides entries of the built-in name override table.
	// e.g. map[string]string{"number": "double"}
	TypeMappings map[string]string
}

// GenerateResult contains generation output and metadata.
type GenerateResult struct {
	// Files lists all files that were written.
	Files []OutputFile

	// Classes holds the rendered class declarations, in input order.
	Classes []ClassDecl

	// Models holds the synthesized model type declarations, in
	// registration order.
	Models []ModelDecl

	// Enums holds the synthesized enum declarations, in first-seen order.
	Enums []EnumDecl

	// Warnings contains non-fatal issues encountered during generation.
	Warnings []ir.Warning
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the relative path of the generated file.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// ClassDecl is one rendered API class: its binding interface name, the
// resolved base type name (empty for none), and the ordered member
// declaration lines.
type ClassDecl struct {
	Name  string
	Base  string
	Lines []string
	Doc   ir.Documentation
}

// ModelDecl is one synthesized model type with its ordered property
// declaration lines.
type ModelDecl struct {
	Name  string
	Lines []string
}

// EnumDecl is one synthesized literal-union enum.
type EnumDecl struct {
	Name    string
	Members []EnumMemberDecl
}

// EnumMemberDecl pairs an enum member name with the original literal string
// value it round-trips to on the wire.
type EnumMemberDecl struct {
	Name    string
	Literal string
}
