package csharp

import (
	"bytes"
	"fmt"
)

const fileHeader = "// Code generated by sharpgen. DO NOT EDIT.\n"

var fileUsings = []string{
	"System",
	"System.Collections.Generic",
	"System.Runtime.Serialization",
	"System.Threading.Tasks",
}

// Emitter assembles rendered declarations into C# source files.
type Emitter struct {
	cfg GeneratorConfig
}

// NewEmitter returns an emitter for the given configuration.
func NewEmitter(cfg GeneratorConfig) *Emitter {
	return &Emitter{cfg: cfg}
}

// EmitClass writes a class binding interface declaration.
func (e *Emitter) EmitClass(buf *bytes.Buffer, d ClassDecl) {
	if e.cfg.EmitComments && !d.Doc.IsZero() {
		summary := d.Doc.Summary
		if summary == "" {
			summary = d.Doc.Body
		}
		fmt.Fprintf(buf, "    /// <summary>%s</summary>\n", xmlEscape(summary))
	}
	buf.WriteString("    public partial interface " + d.Name)
	if d.Base != "" {
		buf.WriteString(" : " + d.Base)
	}
	buf.WriteString("\n    {\n")
	for _, line := range d.Lines {
		buf.WriteString("        " + line + "\n")
	}
	buf.WriteString("    }\n")
}

// EmitModel writes a synthesized model type declaration.
func (e *Emitter) EmitModel(buf *bytes.Buffer, d ModelDecl) {
	buf.WriteString("    public partial class " + d.Name + "\n    {\n")
	for _, line := range d.Lines {
		buf.WriteString("        " + line + "\n")
	}
	buf.WriteString("    }\n")
}

// EmitEnum writes a literal-union enum declaration. Each member carries its
// original literal value so serialization round-trips.
func (e *Emitter) EmitEnum(buf *bytes.Buffer, d EnumDecl) {
	buf.WriteString("    public enum " + d.Name + "\n    {\n")
	for _, m := range d.Members {
		fmt.Fprintf(buf, "        [EnumMember(Value = %q)]\n", m.Literal)
		buf.WriteString("        " + m.Name + ",\n")
	}
	buf.WriteString("    }\n")
}

// File wraps one or more emitted declaration bodies into a complete source
// file with header, usings, and the configured namespace.
func (e *Emitter) File(bodies ...[]byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	buf.WriteString("\n")
	for _, u := range fileUsings {
		buf.WriteString("using " + u + ";\n")
	}
	buf.WriteString("\nnamespace " + e.cfg.Namespace + "\n{\n")
	for i, b := range bodies {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.Write(b)
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}
