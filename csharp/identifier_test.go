package csharp

import "testing"

func TestPascalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"page", "Page"},
		{"waitUntil", "WaitUntil"},
		{"print-options", "PrintOptions"},
		{"snake_case", "SnakeCase"},
		{"dotted.name", "DottedName"},
		{"two words", "TwoWords"},
		{"Already", "Already"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := pascalize(tt.input); got != tt.want {
				t.Errorf("pascalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCamelize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Page", "page"},
		{"wait-until", "waitUntil"},
		{"URL", "uRL"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := camelize(tt.input); got != tt.want {
				t.Errorf("camelize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeReservedWord(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"event", "@event"},
		{"params", "@params"},
		{"string", "@string"},
		{"selector", "selector"},
		{"Event", "Event"},
	}

	for _, tt := range tests {
		if got := escapeReservedWord(tt.input); got != tt.want {
			t.Errorf("escapeReservedWord(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTagForType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"string", "String"},
		{"byte[]", "Byte"},
		{"IEnumerable<string>", "IEnumerableString"},
		{"IDictionary<string, string>", "IDictionaryString"},
		{"Func<string, string>", "FuncString"},
		{"Func<string, decimal>", "FuncStringDecimal"},
		{"IPage", "IPage"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := tagForType(tt.input); got != tt.want {
				t.Errorf("tagForType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
