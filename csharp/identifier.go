package csharp

import (
	"strings"
	"unicode"
)

// C# reserved words. Identifiers that collide are escaped with the verbatim
// prefix rather than renamed, so generated members keep their wire names.
var reservedWords = map[string]bool{
	"abstract": true, "as": true, "base": true, "bool": true,
	"break": true, "byte": true, "case": true, "catch": true,
	"char": true, "checked": true, "class": true, "const": true,
	"continue": true, "decimal": true, "default": true, "delegate": true,
	"do": true, "double": true, "else": true, "enum": true,
	"event": true, "explicit": true, "extern": true, "false": true,
	"finally": true, "fixed": true, "float": true, "for": true,
	"foreach": true, "goto": true, "if": true, "implicit": true,
	"in": true, "int": true, "interface": true, "internal": true,
	"is": true, "lock": true, "long": true, "namespace": true,
	"new": true, "null": true, "object": true, "operator": true,
	"out": true, "override": true, "params": true, "private": true,
	"protected": true, "public": true, "readonly": true, "ref": true,
	"return": true, "sbyte": true, "sealed": true, "short": true,
	"sizeof": true, "stackalloc": true, "static": true, "string": true,
	"struct": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "uint": true,
	"ulong": true, "unchecked": true, "unsafe": true, "ushort": true,
	"using": true, "virtual": true, "void": true, "volatile": true,
	"while": true,
}

// escapeReservedWord escapes a C# reserved word with the @ verbatim prefix.
func escapeReservedWord(name string) string {
	if reservedWords[name] {
		return "@" + name
	}
	return name
}

// pascalize converts a source identifier to PascalCase, splitting on
// '-', '_', '.', and spaces.
func pascalize(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == '.' || r == ' ':
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// camelize converts a source identifier to camelCase.
func camelize(name string) string {
	p := pascalize(name)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// tagForType derives the capitalized disambiguation tag for an exploded
// overload parameter from its translated type expression. Words are split
// on non-alphanumeric characters and consecutive duplicates are dropped,
// so "IEnumerable<string>" becomes "IEnumerableString" and
// "Func<string, string>" becomes "FuncString".
func tagForType(expr string) string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		w := pascalize(cur.String())
		if len(words) == 0 || words[len(words)-1] != w {
			words = append(words, w)
		}
		cur.Reset()
	}
	for _, r := range expr {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return strings.Join(words, "")
}
