package csharp

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/sharpgen/sharpgen/ir"
)

func objectWith(name, typ string) *ir.ObjectNode {
	return ir.Object("", &ir.MemberNode{Name: name, Required: true, Type: ir.Primitive(typ)})
}

func TestSynthesizeFromChain(t *testing.T) {
	tests := []struct {
		name  string
		chain []string
		want  string
	}{
		{"simple", []string{"Page", "margin"}, "Margin"},
		{"plural stripped", []string{"Page", "cookies"}, "Cookie"},
		{"plural by nature", []string{"Element", "bounds"}, "Bounds"},
		{"credentials kept", []string{"Browser", "credentials"}, "Credentials"},
		{"alias property", []string{"Page", "properties"}, "Property"},
		{"alias entry", []string{"Log", "entries"}, "Entry"},
		{"alias viewport", []string{"Page", "viewport"}, "ViewportSize"},
		{"doubled innermost", []string{"Frame", "frame"}, "Frame"},
		{"empty links skipped", []string{"", "margin"}, "Margin"},
		{"kebab input", []string{"Page", "print-options"}, "PrintOption"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nm := NewNamer(NewRegistry())
			got, err := nm.Synthesize(objectWith("a", "string"), tt.chain)
			if err != nil {
				t.Fatalf("Synthesize() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Synthesize(%v) = %q, want %q", tt.chain, got, tt.want)
			}
		})
	}
}

func TestSynthesizeRegistersModel(t *testing.T) {
	reg := NewRegistry()
	nm := NewNamer(reg)
	obj := objectWith("a", "string")

	name, err := nm.Synthesize(obj, []string{"Page", "margin"})
	if err != nil {
		t.Fatal(err)
	}
	stored, ok := reg.Model(name)
	if !ok {
		t.Fatalf("model %q not registered", name)
	}
	if !ir.Equal(stored, obj) {
		t.Errorf("registered type differs from input")
	}
}

func TestSynthesizeCollisionOrderDependence(t *testing.T) {
	objA := objectWith("a", "string")
	objB := objectWith("b", "number")

	// Whichever type is seen first claims the plain candidate; the later,
	// structurally different type is pushed into the prefixed form.
	reg := NewRegistry()
	nm := NewNamer(reg)
	first, err := nm.Synthesize(objA, []string{"Alpha", "getConfig"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := nm.Synthesize(objB, []string{"Beta", "getConfig"})
	if err != nil {
		t.Fatal(err)
	}
	if first != "GetConfig" || second != "BetaGetConfig" {
		t.Errorf("got (%q, %q), want (GetConfig, BetaGetConfig)", first, second)
	}

	// Reversed traversal swaps the winners.
	reg = NewRegistry()
	nm = NewNamer(reg)
	first, err = nm.Synthesize(objB, []string{"Beta", "getConfig"})
	if err != nil {
		t.Fatal(err)
	}
	second, err = nm.Synthesize(objA, []string{"Alpha", "getConfig"})
	if err != nil {
		t.Fatal(err)
	}
	if first != "GetConfig" || second != "AlphaGetConfig" {
		t.Errorf("reversed: got (%q, %q), want (GetConfig, AlphaGetConfig)", first, second)
	}
}

func TestSynthesizeDeduplicatesEqualShapes(t *testing.T) {
	reg := NewRegistry()
	nm := NewNamer(reg)

	first, err := nm.Synthesize(objectWith("a", "string"), []string{"Alpha", "getConfig"})
	if err != nil {
		t.Fatal(err)
	}
	// A structurally identical type from a different class reuses the
	// existing declaration instead of minting a prefixed name.
	second, err := nm.Synthesize(objectWith("a", "string"), []string{"Beta", "getConfig"})
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("equal shapes named differently: %q vs %q", first, second)
	}
	if reg.ModelCount() != 1 {
		t.Errorf("got %d models, want 1", reg.ModelCount())
	}
}

func TestSynthesizeReservedName(t *testing.T) {
	nm := NewNamer(NewRegistry())

	got, err := nm.Synthesize(objectWith("a", "string"), []string{"Page", "errors"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "PageError" {
		t.Errorf("Synthesize() = %q, want %q", got, "PageError")
	}
}

func TestSynthesizeStructurelessObject(t *testing.T) {
	reg := NewRegistry()
	nm := NewNamer(reg)

	got, err := nm.Synthesize(ir.Object(""), []string{"Page", "payload"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "object" {
		t.Errorf("Synthesize() = %q, want %q", got, "object")
	}
	if reg.ModelCount() != 0 {
		t.Error("marker result must not be registered")
	}
}

func TestSynthesizeExhaustion(t *testing.T) {
	reg := NewRegistry()
	nm := NewNamer(reg)

	if _, err := nm.Synthesize(objectWith("a", "string"), []string{"Bar", "foo"}); err != nil {
		t.Fatal(err)
	}
	if _, err := nm.Synthesize(objectWith("b", "string"), []string{"Bar", "foo"}); err != nil {
		t.Fatal(err)
	}

	_, err := nm.Synthesize(objectWith("c", "string"), []string{"Bar", "foo"})
	if err == nil {
		t.Fatal("expected exhaustion error")
	}
	if !errors.Is(err, ErrNaming) {
		t.Errorf("error not marked ErrNaming: %v", err)
	}
}

func TestSynthesizeNoContext(t *testing.T) {
	nm := NewNamer(NewRegistry())
	_, err := nm.Synthesize(objectWith("a", "string"), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrNaming) {
		t.Errorf("error not marked ErrNaming: %v", err)
	}
}
