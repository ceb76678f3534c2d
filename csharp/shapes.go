package csharp

// nameMap is the hand-authored override table from source primitive and
// class names to C# names. Read-only during translation.
var nameMap = map[string]string{
	"string":       "string",
	"boolean":      "bool",
	"number":       "decimal",
	"float":        "double",
	"int":          "int",
	"void":         "void",
	"null":         "void",
	"Object":       "object",
	"Any":          "object",
	"any":          "object",
	"Buffer":       "byte[]",
	"binary":       "byte[]",
	"Serializable": "object",
	"Error":        "Exception",
	"Promise":      "Task",
	"EventEmitter": "object",
}

// primitiveEscapes lists the built-in C# type names that synthesized model
// names may resolve to. A type landing on one of these is never registered
// as a model declaration.
var primitiveEscapes = map[string]bool{
	"object":  true,
	"string":  true,
	"bool":    true,
	"int":     true,
	"decimal": true,
	"double":  true,
	"byte[]":  true,
	"void":    true,
}

// fixedShape is one exact-match translation rule keyed on a canonical type
// expression. These are recurring source shapes whose translation does not
// fit the general union algorithm; keeping them in one table keeps the rule
// set auditable.
type fixedShape struct {
	expr   string // canonical expression to match
	result string // C# type expression
	warn   string // warning code emitted on match, if any
}

var fixedShapes = []fixedShape{
	// A nullable error is the wire encoding of a success marker.
	{expr: "null|Error", result: "void"},
	// Tri-state attribute value, backed by the seeded MixedState enum.
	{expr: `boolean|"mixed"`, result: "MixedState"},
	// Text-or-binary payloads collapse to a byte sequence.
	{expr: "string|Buffer", result: "byte[]"},
	// Underspecified source type; collapses to string with a diagnostic.
	{expr: "string|number|boolean", result: "string", warn: "underspecified_union"},
	// Polling interval: a float or the frame-tick token.
	{expr: `number|"raf"`, result: "Polling"},
}

func lookupFixedShape(expr string) (fixedShape, bool) {
	for _, fs := range fixedShapes {
		if fs.expr == expr {
			return fs, true
		}
	}
	return fixedShape{}, false
}
