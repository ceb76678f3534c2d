package csharp

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/sharpgen/sharpgen/ir"
)

// verbPrefixes excludes action-like names from the getter-to-property
// convention: a zero-argument method starting with one of these stays a
// method even when it returns a value.
var verbPrefixes = []string{"close", "go", "set", "wait"}

// renderer renders the members of one class or model type into C#
// declaration lines, invoking the translator per type node.
type renderer struct {
	tr        *Translator
	nm        *Namer
	enclosing string
	emitDocs  bool
}

func newRenderer(tr *Translator, nm *Namer, enclosing string, emitDocs bool) *renderer {
	return &renderer{tr: tr, nm: nm, enclosing: enclosing, emitDocs: emitDocs}
}

// fallbackFor returns a name fallback bound to the given lexical chain.
func (r *renderer) fallbackFor(chain []string) NameFallback {
	return func(t ir.TypeNode) (string, error) {
		return r.nm.Synthesize(t, chain)
	}
}

// renderMember renders one class member into declaration lines.
func (r *renderer) renderMember(m *ir.MemberNode) ([]string, error) {
	switch m.Kind {
	case ir.MethodMember:
		return r.renderMethod(m)
	case ir.PropertyMember:
		return r.renderProperty(m)
	case ir.EventMember:
		return r.renderEvent(m)
	}
	return nil, errors.Mark(
		errors.Newf("unrecognized member kind %q on %s.%s", m.Kind, r.enclosing, m.Name),
		ErrUnknownShape)
}

// renderProperty renders a declared property as a read-only interface
// property.
func (r *renderer) renderProperty(m *ir.MemberNode) ([]string, error) {
	typ, err := r.translateSingle(m)
	if err != nil {
		return nil, err
	}
	if !m.Required {
		typ = nullable(typ)
	}
	name := escapeReservedWord(pascalize(m.DisplayName()))
	lines := r.docLines(m.Documentation)
	return append(lines, fmt.Sprintf("%s %s { get; }", typ, name)), nil
}

// renderEvent renders an event member.
func (r *renderer) renderEvent(m *ir.MemberNode) ([]string, error) {
	typ, err := r.translateSingle(m)
	if err != nil {
		return nil, err
	}
	name := escapeReservedWord(pascalize(m.DisplayName()))
	lines := r.docLines(m.Documentation)
	if typ == "void" {
		return append(lines, fmt.Sprintf("event EventHandler %s;", name)), nil
	}
	return append(lines, fmt.Sprintf("event EventHandler<%s> %s;", typ, name)), nil
}

// renderMethod renders a method member, producing one line per overload.
func (r *renderer) renderMethod(m *ir.MemberNode) ([]string, error) {
	display := m.DisplayName()
	ret, err := r.translateSingle(m)
	if err != nil {
		return nil, err
	}
	name := escapeReservedWord(pascalize(display))

	// Zero-argument synchronous value-returning methods render as
	// read-only properties, bridging source getters to C# conventions.
	if !m.Async && len(m.Args) == 0 && ret != "void" && !hasVerbPrefix(display) {
		lines := r.docLines(m.Documentation)
		return append(lines, fmt.Sprintf("%s %s { get; }", ret, name)), nil
	}

	if m.Async {
		if !strings.HasSuffix(name, "Async") {
			name += "Async"
		}
		if ret == "void" {
			ret = "Task"
		} else {
			ret = "Task<" + ret + ">"
		}
	}

	params, exp, err := r.buildParams(m, flattenArgs(m.Args))
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, sig := range expandOverloads(params, exp) {
		lines = append(lines, r.docLines(m.Documentation)...)
		lines = append(lines, fmt.Sprintf("%s %s(%s);", ret, name, formatParams(sig)))
	}
	return lines, nil
}

// renderModelProperty renders one property of a synthesized model type.
func (r *renderer) renderModelProperty(m *ir.MemberNode) ([]string, error) {
	typ, err := r.translateSingle(m)
	if err != nil {
		return nil, err
	}
	if !m.Required {
		typ = nullable(typ)
	}
	name := escapeReservedWord(pascalize(m.DisplayName()))
	lines := r.docLines(m.Documentation)
	return append(lines, fmt.Sprintf("public %s %s { get; set; }", typ, name)), nil
}

// translateSingle translates a member's own type, rejecting unions that
// cannot be expressed as one type: only method parameters may explode.
func (r *renderer) translateSingle(m *ir.MemberNode) (string, error) {
	chain := []string{r.enclosing, m.DisplayName()}
	tctx := TypeContext{Enclosing: r.enclosing, Member: m, Chain: chain}
	typ, ok, err := r.tr.Translate(m.Type, tctx, r.fallbackFor(chain))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.Mark(
			errors.Newf("type of %s.%s cannot be expressed as one type: %s",
				r.enclosing, m.DisplayName(), m.Type.Expression()),
			ErrUnknownShape)
	}
	return typ, nil
}

func (r *renderer) docLines(doc ir.Documentation) []string {
	if !r.emitDocs || doc.IsZero() {
		return nil
	}
	summary := doc.Summary
	if summary == "" {
		summary = doc.Body
		if i := strings.IndexByte(summary, '\n'); i >= 0 {
			summary = summary[:i]
		}
	}
	return []string{"/// <summary>" + xmlEscape(strings.TrimSpace(summary)) + "</summary>"}
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}

// flattenArgs expands parameters named "options" into their constituent
// properties, recursively, so option bags become flat parameter lists.
func flattenArgs(args []*ir.MemberNode) []*ir.MemberNode {
	out := make([]*ir.MemberNode, 0, len(args))
	for _, a := range args {
		if a.Name == "options" {
			if obj, isObj := a.Type.(*ir.ObjectNode); isObj {
				out = append(out, flattenArgs(obj.Properties)...)
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

func hasVerbPrefix(display string) bool {
	lower := strings.ToLower(display)
	for _, p := range verbPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// nullable appends the C# nullable annotation unless the type already
// carries one or cannot take one.
func nullable(typ string) string {
	if typ == "void" || strings.HasSuffix(typ, "?") {
		return typ
	}
	return typ + "?"
}
