package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig    Category = "config"
	CategoryContent   Category = "content"
	CategoryDocument  Category = "document"
	CategoryBlueprint Category = "blueprint"
	CategoryOutput    Category = "output"
	CategoryPublish   Category = "publish"
	CategoryCLI       Category = "cli"
)

// Location represents a position in a source file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// MarkupError is a structured error with a code, optional source location,
// and a suggestion for the caller.
type MarkupError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (config, content, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of this occurrence.
	Detail string

	// Location is the source position the error refers to, if any.
	Location *Location

	// Context contains surrounding source lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error returns "code: message: detail: cause", omitting empty parts.
func (e *MarkupError) Error() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{e.Code, e.Message, e.Detail} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if e.Wrapped != nil {
		parts = append(parts, e.Wrapped.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *MarkupError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a MarkupError with the same code.
func (e *MarkupError) Is(target error) bool {
	t, ok := target.(*MarkupError)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// WithLocation adds a source location to the error and loads the
// surrounding lines when the file is readable.
func (e *MarkupError) WithLocation(file string, line, column int) *MarkupError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, contextLines)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *MarkupError) WithSuggestion(s string) *MarkupError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *MarkupError) WithDetail(d string) *MarkupError {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with a format string.
func (e *MarkupError) WithDetailf(format string, args ...any) *MarkupError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *MarkupError) Wrap(err error) *MarkupError {
	e.Wrapped = err
	return e
}

// contextLines is the number of source lines shown around a location.
const contextLines = 5

// readContextLines returns up to size lines of filename centred on line.
func readContextLines(filename string, line, size int) []string {
	f, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer f.Close()

	first, last := line-size/2, line+size/2
	var lines []string
	sc := bufio.NewScanner(f)
	for n := 1; n <= last && sc.Scan(); n++ {
		if n >= first {
			lines = append(lines, sc.Text())
		}
	}
	return lines
}

// New creates a MarkupError from a registered error code.
func New(code string) *MarkupError {
	template, ok := registry[code]
	if !ok {
		return &MarkupError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &MarkupError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new MarkupError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *MarkupError {
	return &MarkupError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a MarkupError. Errors that already
// carry a MarkupError in their chain are returned unchanged.
func FromError(err error, code string) *MarkupError {
	if err == nil {
		return nil
	}
	var me *MarkupError
	if stderrors.As(err, &me) {
		return me
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first MarkupError in err's chain, or "".
func CodeOf(err error) string {
	var me *MarkupError
	if stderrors.As(err, &me) {
		return me.Code
	}
	return ""
}
