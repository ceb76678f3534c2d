package sink

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"IPage.cs", false},
		{"sub/dir/IPage.cs", false},
		{"", true},
		{"/etc/passwd", true},
		{"C:evil.cs", true},
		{"c:evil.cs", true},
		{"../escape.cs", true},
		{"sub/../escape.cs", true},
		{"sub//double.cs", true},
		{"./dotted.cs", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestFilesystemSinkWriteFile(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)
	ctx := context.Background()

	content := []byte("// Code generated by sharpgen. DO NOT EDIT.\n")
	if err := s.WriteFile(ctx, "sub/IPage.cs", content); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "sub", "IPage.cs"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Errorf("read back %q, want %q", got, content)
	}

	// No temp files may survive a successful write.
	entries, err := os.ReadDir(filepath.Join(dir, "sub"))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".sharpgen-") {
			t.Errorf("leftover temp file: %s", e.Name())
		}
	}
}

func TestFilesystemSinkOverwrite(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)
	ctx := context.Background()

	if err := s.WriteFile(ctx, "IPage.cs", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteFile(ctx, "IPage.cs", []byte("new")); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "IPage.cs"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("read back %q, want %q", got, "new")
	}
}

func TestFilesystemSinkRejectsEscape(t *testing.T) {
	s := NewFilesystemSink(t.TempDir())
	if err := s.WriteFile(context.Background(), "../outside.cs", []byte("x")); err == nil {
		t.Fatal("expected error for escaping path")
	}
}

func TestFilesystemSinkCanceledContext(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.WriteFile(ctx, "IPage.cs", []byte("x")); err == nil {
		t.Fatal("expected context error")
	}
	if _, err := os.Stat(filepath.Join(dir, "IPage.cs")); !os.IsNotExist(err) {
		t.Error("file must not exist after canceled write")
	}
}

func TestMemorySink(t *testing.T) {
	s := NewMemorySink()
	ctx := context.Background()

	if got := s.Get("missing.cs"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}

	content := []byte("body")
	if err := s.WriteFile(ctx, "Types.cs", content); err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's buffer must not affect the stored copy.
	content[0] = 'X'
	if got := string(s.Get("Types.cs")); got != "body" {
		t.Errorf("Get() = %q, want %q", got, "body")
	}

	files := s.Files()
	if len(files) != 1 {
		t.Fatalf("Files() has %d entries, want 1", len(files))
	}
	files["Types.cs"][0] = 'Y'
	if got := string(s.Get("Types.cs")); got != "body" {
		t.Errorf("stored content mutated through Files() copy")
	}
}

func TestMemorySinkRejectsInvalidPath(t *testing.T) {
	s := NewMemorySink()
	if err := s.WriteFile(context.Background(), "../x.cs", []byte("x")); err == nil {
		t.Fatal("expected error")
	}
}
