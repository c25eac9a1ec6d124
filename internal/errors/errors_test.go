package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "missing init parameter",
			code:    CodeMissingInitParameter,
			wantMsg: "Missing initialization parameter",
			wantCat: CategoryConfig,
		},
		{
			name:    "invalid content kind",
			code:    CodeInvalidContentKind,
			wantMsg: "Invalid content kind",
			wantCat: CategoryContent,
		},
		{
			name:    "document not built",
			code:    CodeDocumentNotBuilt,
			wantMsg: "Document not built",
			wantCat: CategoryDocument,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "page.yaml")
	if err.Message != `file "page.yaml" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "page.yaml" not found`)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestMarkupError_Error(t *testing.T) {
	err := New(CodeDocumentNotBuilt)
	if got, want := err.Error(), "E003: Document not built"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	detailed := New(CodeInvalidContentKind).WithDetail(`content passed to "p" must be a string or an element node, got int`)
	if !strings.Contains(detailed.Error(), `"p"`) {
		t.Errorf("Error() = %q, should name the constructor", detailed.Error())
	}

	plain := &MarkupError{Message: "test error"}
	if plain.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "test error")
	}

	wrapped := New(CodeConfigInvalid).Wrap(fmt.Errorf("boom"))
	if !strings.HasSuffix(wrapped.Error(), ": boom") {
		t.Errorf("Error() = %q, should end with the wrapped cause", wrapped.Error())
	}
}

func TestMarkupError_Is(t *testing.T) {
	err := fmt.Errorf("building page: %w", New(CodeDocumentNotBuilt).WithDetail("x"))

	if !stderrors.Is(err, New(CodeDocumentNotBuilt)) {
		t.Error("errors.Is should match by code through wrapping")
	}
	if stderrors.Is(err, New(CodeInvalidContentKind)) {
		t.Error("errors.Is should not match a different code")
	}
	if stderrors.Is(err, &MarkupError{Message: "Document not built"}) {
		t.Error("errors.Is should not match a code-less target")
	}
}

func TestMarkupError_WithLocation(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "page.yaml")
	content := `lang: en
encoding: utf-8
body:
  content:
    - tag: p
      content: [1, 2]
`
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New(CodeBlueprintParse).WithLocation(tmpFile, 6, 16)

	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.File != tmpFile {
		t.Errorf("Location.File = %q, want %q", err.Location.File, tmpFile)
	}
	if err.Location.Line != 6 || err.Location.Column != 16 {
		t.Errorf("Location = %d:%d, want 6:16", err.Location.Line, err.Location.Column)
	}
	if len(err.Context) == 0 {
		t.Error("Context should not be empty")
	}
}

func TestMarkupError_Wrap(t *testing.T) {
	inner := New(CodeWriteFailed)
	outer := New(CodePublishFailed).Wrap(inner)

	if outer.Wrapped != inner {
		t.Error("Wrapped error mismatch")
	}
	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeWriteFailed) != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	me := New(CodeDocumentNotBuilt)
	if FromError(fmt.Errorf("ctx: %w", me), CodeWriteFailed) != me {
		t.Error("FromError should return a MarkupError found in the chain")
	}

	stdErr := &testError{msg: "test error"}
	result := FromError(stdErr, CodeWriteFailed)
	if result.Wrapped != stdErr {
		t.Error("Standard error should be wrapped")
	}
	if result.Code != CodeWriteFailed {
		t.Errorf("Code = %q, want %q", result.Code, CodeWriteFailed)
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(fmt.Errorf("x: %w", New(CodeUnknownDoctype))); got != CodeUnknownDoctype {
		t.Errorf("CodeOf() = %q, want %q", got, CodeUnknownDoctype)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != "" {
		t.Errorf("CodeOf() = %q, want empty", got)
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{name: "nil location", loc: nil, want: ""},
		{name: "with column", loc: &Location{File: "page.yaml", Line: 10, Column: 5}, want: "page.yaml:10:5"},
		{name: "without column", loc: &Location{File: "page.yaml", Line: 10}, want: "page.yaml:10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "page.yaml")
	content := "lang: en\nbody:\n  content:\n    - tag: [\n"
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	err := New(CodeBlueprintParse).
		WithLocation(tmpFile, 4, 12).
		WithDetail("unexpected end of flow sequence")

	formatted := err.Format()

	for _, want := range []string{"E031", "Cannot parse blueprint", tmpFile, "unexpected end", "Hint:", "^"} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format should contain %q, got:\n%s", want, formatted)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New(CodeBlueprintParse)
	err.Location = &Location{File: "page.yaml", Line: 10, Column: 5}

	want := "page.yaml:10:5: E031: Cannot parse blueprint"
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	var buf bytes.Buffer
	Fprint(&buf, New(CodeDocumentNotBuilt))
	if !strings.Contains(buf.String(), "ERROR E003: Document not built") {
		t.Errorf("Fprint() = %q", buf.String())
	}

	buf.Reset()
	Fprint(&buf, fmt.Errorf("plain failure"))
	if !strings.Contains(buf.String(), "ERROR: plain failure") {
		t.Errorf("Fprint() = %q", buf.String())
	}
}

func TestLookup(t *testing.T) {
	template, ok := Lookup(CodeMissingInitParameter)
	if !ok {
		t.Fatal("E001 should exist")
	}
	if template.Message != "Missing initialization parameter" {
		t.Error("Template message mismatch")
	}

	if _, ok := Lookup("E999"); ok {
		t.Error("E999 should not exist")
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("short text", 100)
	if len(got) != 1 || got[0] != "short text" {
		t.Errorf("wrapText short text: got %v", got)
	}

	got = wrapText("this is a longer text that should be wrapped", 20)
	if len(got) != 3 {
		t.Errorf("wrapText long text: expected 3 lines, got %d: %v", len(got), got)
	}

	got = wrapText("", 10)
	if len(got) != 0 {
		t.Errorf("wrapText empty: expected empty, got %v", got)
	}
}

func TestColorFunctions(t *testing.T) {
	EnableColors()
	if !strings.Contains(red("test"), "\033[31m") {
		t.Error("red should contain ANSI code when colors enabled")
	}

	DisableColors()
	if strings.Contains(red("test"), "\033[") {
		t.Error("red should not contain ANSI code when colors disabled")
	}
	EnableColors()
}
