package ir

// Documentation holds documentation text extracted from the API description.
// Generators carry it opaquely and decide how much of it to emit.
type Documentation struct {
	// Summary is the first sentence, suitable for brief descriptions.
	Summary string

	// Body is the complete documentation text, including the summary.
	Body string

	// Deprecated is non-nil if the symbol is marked deprecated.
	// The string value is the deprecation message (may be empty).
	Deprecated *string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Summary == "" && d.Body == "" && d.Deprecated == nil
}

// Warning represents a non-fatal issue encountered during generation.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// Subject is the class, member, or type expression that triggered
	// the warning, if applicable.
	Subject string
}
