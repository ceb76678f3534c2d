package ir

// MemberKind identifies the category of a class member.
type MemberKind int

const (
	MethodMember MemberKind = iota
	PropertyMember
	EventMember
)

// String returns the string representation of the member kind.
func (k MemberKind) String() string {
	switch k {
	case MethodMember:
		return "method"
	case PropertyMember:
		return "property"
	case EventMember:
		return "event"
	default:
		return "unknown"
	}
}

// MemberNode describes one class member: a method, property, or event.
// Method parameters are themselves MemberNodes carried in Args.
type MemberNode struct {
	// Name is the source member name.
	Name string

	// Alias overrides the display name when non-empty.
	Alias string

	// Kind is the member category.
	Kind MemberKind

	// Required is false for optional members and parameters.
	Required bool

	// Async marks asynchronous methods.
	Async bool

	// Type is the member's type: return type for methods, value type for
	// properties and events. May be nil for void methods.
	Type TypeNode

	// Args holds method parameters in declaration order. Each parameter
	// is itself a member with its own type, Required flag, and alias.
	Args []*MemberNode

	// Documentation is the opaque documentation payload.
	Documentation Documentation
}

// DisplayName returns the alias when set, otherwise the member name.
func (m *MemberNode) DisplayName() string {
	if m.Alias != "" {
		return m.Alias
	}
	return m.Name
}

// ClassNode describes one API class with its members in declaration order.
type ClassNode struct {
	// Name is the class name.
	Name string

	// Extends is the base class name, empty for root classes.
	Extends string

	// Members holds the class members in declaration order.
	Members []*MemberNode

	// Documentation is the opaque documentation payload.
	Documentation Documentation
}
