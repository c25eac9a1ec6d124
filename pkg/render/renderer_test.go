package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	xerrors "github.com/cyb3rnet/xhtml/internal/errors"
	"github.com/cyb3rnet/xhtml/pkg/markup"
)

func newRoot(t *testing.T, text string) *markup.Node {
	t.Helper()
	body, err := markup.NewNode("body", nil, false, markup.Text(text))
	if err != nil {
		t.Fatal(err)
	}
	root, err := markup.NewNode("html", markup.Attrs{markup.Lang("fr")}, false, markup.Element(body))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestNewRendererDefaults(t *testing.T) {
	r, err := NewRenderer(RendererConfig{})
	if err != nil {
		t.Fatalf("NewRenderer error: %v", err)
	}
	want, _ := Doctype(DefaultDoctype)
	if r.Declaration() != want {
		t.Errorf("Declaration() = %q, want %q", r.Declaration(), want)
	}
	if r.Charset() != "utf-8" {
		t.Errorf("Charset() = %q, want utf-8", r.Charset())
	}
}

func TestNewRendererErrors(t *testing.T) {
	tests := []struct {
		name   string
		config RendererConfig
		code   string
	}{
		{"unknown doctype", RendererConfig{Doctype: "xhtml2"}, xerrors.CodeUnknownDoctype},
		{"unknown encoding", RendererConfig{Encoding: "klingon-8"}, xerrors.CodeUnsupportedEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRenderer(tt.config)
			if got := xerrors.CodeOf(err); got != tt.code {
				t.Errorf("NewRenderer() code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestCharsetIsCanonical(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"UTF-8", "utf-8"},
		{"utf8", "utf-8"},
		{"latin1", "windows-1252"},
		{"iso-8859-15", "iso-8859-15"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			r, err := NewRenderer(RendererConfig{Encoding: tt.label})
			if err != nil {
				t.Fatalf("NewRenderer error: %v", err)
			}
			if r.Charset() != tt.want {
				t.Errorf("Charset() = %q, want %q", r.Charset(), tt.want)
			}
		})
	}
}

func TestRenderToString(t *testing.T) {
	r, err := NewRenderer(RendererConfig{Doctype: "html5"})
	if err != nil {
		t.Fatal(err)
	}
	got := r.RenderToString(newRoot(t, "salut"))
	want := `<!DOCTYPE html><html lang="fr"><body>salut</body></html>`
	if got != want {
		t.Errorf("RenderToString() = %q, want %q", got, want)
	}
}

func TestEncodeUTF8Passthrough(t *testing.T) {
	r, _ := NewRenderer(RendererConfig{})
	var buf bytes.Buffer
	if _, err := r.Encode(&buf, "déjà vu ✓"); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if buf.String() != "déjà vu ✓" {
		t.Errorf("Encode() = %q", buf.String())
	}
}

func TestEncodeEscapesUnsupported(t *testing.T) {
	r, err := NewRenderer(RendererConfig{Encoding: "iso-8859-1"})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := r.Encode(&buf, "é✓"); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	got := buf.Bytes()
	if got[0] != 0xE9 {
		t.Errorf("first byte = %#x, want 0xe9", got[0])
	}
	if string(got[1:]) != "&#10003;" {
		t.Errorf("unsupported rune written as %q", got[1:])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderToWriterFailure(t *testing.T) {
	r, _ := NewRenderer(RendererConfig{})
	err := r.RenderToWriter(failingWriter{}, newRoot(t, "x"))
	if xerrors.CodeOf(err) != xerrors.CodeWriteFailed {
		t.Fatalf("RenderToWriter() error = %v, want E041", err)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("error %q should carry the cause", err)
	}
}

func TestContentType(t *testing.T) {
	r, _ := NewRenderer(RendererConfig{Encoding: "latin1"})
	if got := r.ContentType("text/html"); got != "text/html; charset=windows-1252" {
		t.Errorf("ContentType() = %q", got)
	}
}

func TestDoctypeNames(t *testing.T) {
	names := DoctypeNames()
	if len(names) != 8 {
		t.Fatalf("DoctypeNames() = %v", names)
	}
	for _, name := range names {
		decl, ok := Doctype(name)
		if !ok || !strings.HasPrefix(decl, "<!DOCTYPE") {
			t.Errorf("Doctype(%q) = %q, %v", name, decl, ok)
		}
	}
	if _, ok := Doctype("xhtml2"); ok {
		t.Error("Doctype(xhtml2) should be unknown")
	}
}
