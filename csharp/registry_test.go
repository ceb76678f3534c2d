package csharp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpgen/sharpgen/ir"
)

func TestRegistrySeedsMixedState(t *testing.T) {
	reg := NewRegistry()

	lits, ok := reg.Enum("MixedState")
	require.True(t, ok, "MixedState must exist before any translation")
	assert.Equal(t, []string{"on", "off", "mixed"}, lits)
	assert.Equal(t, []string{"MixedState"}, reg.EnumNames())
}

func TestRegistryClasses(t *testing.T) {
	reg := NewRegistry()
	assert.False(t, reg.IsClass("Page"))
	reg.AddClass("Page")
	assert.True(t, reg.IsClass("Page"))
}

func TestRegistryModelOrder(t *testing.T) {
	reg := NewRegistry()
	objA := ir.Object("", &ir.MemberNode{Name: "a", Type: ir.Primitive("string")})
	objB := ir.Object("", &ir.MemberNode{Name: "b", Type: ir.Primitive("string")})

	reg.RegisterModel("Margin", objA)
	reg.RegisterModel("Clip", objB)
	// Re-registering an existing name must not move or replace it.
	reg.RegisterModel("Margin", objB)

	require.Equal(t, 2, reg.ModelCount())
	name0, type0 := reg.ModelAt(0)
	assert.Equal(t, "Margin", name0)
	assert.True(t, ir.Equal(objA, type0), "first registration wins")
	name1, _ := reg.ModelAt(1)
	assert.Equal(t, "Clip", name1)
}

func TestRegistryEnumIdempotence(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.RegisterEnum("WaitUntil", []string{"load", "domcontentloaded"}))
	require.NoError(t, reg.RegisterEnum("WaitUntil", []string{"load", "domcontentloaded"}))
	assert.Equal(t, []string{"MixedState", "WaitUntil"}, reg.EnumNames())
}

func TestRegistryEnumConflict(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.RegisterEnum("State", []string{"open", "closed"}))
	assert.Error(t, reg.RegisterEnum("State", []string{"visible", "hidden"}))
	assert.Error(t, reg.RegisterEnum("State", []string{"open"}))
}

func TestRegistryEnumLiteralsCopied(t *testing.T) {
	reg := NewRegistry()
	src := []string{"a", "b"}
	require.NoError(t, reg.RegisterEnum("Pair", src))

	src[0] = "mutated"
	lits, _ := reg.Enum("Pair")
	assert.Equal(t, []string{"a", "b"}, lits)
}
