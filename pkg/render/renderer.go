package render

import (
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	xerrors "github.com/cyb3rnet/xhtml/internal/errors"
	"github.com/cyb3rnet/xhtml/pkg/markup"
)

// RendererConfig configures the document renderer.
type RendererConfig struct {
	// Doctype names the document type declaration written before the root.
	// Defaults to DefaultDoctype.
	Doctype string

	// Encoding is the output charset, any label known to the WHATWG
	// encoding index ("utf-8", "latin1", "shift_jis", ...).
	// Defaults to "utf-8".
	Encoding string
}

// Renderer produces the final form of a document.
type Renderer struct {
	config      RendererConfig
	declaration string
	enc         encoding.Encoding
	charset     string
}

// NewRenderer creates a Renderer, validating the doctype and encoding.
func NewRenderer(config RendererConfig) (*Renderer, error) {
	if config.Doctype == "" {
		config.Doctype = DefaultDoctype
	}
	if config.Encoding == "" {
		config.Encoding = "utf-8"
	}

	decl, ok := Doctype(config.Doctype)
	if !ok {
		return nil, xerrors.New(xerrors.CodeUnknownDoctype).
			WithDetailf("%q is not one of %s", config.Doctype, strings.Join(DoctypeNames(), ", "))
	}

	enc, err := htmlindex.Get(config.Encoding)
	if err != nil {
		return nil, xerrors.New(xerrors.CodeUnsupportedEncoding).
			WithDetailf("%q", config.Encoding).
			Wrap(err)
	}
	charset, err := htmlindex.Name(enc)
	if err != nil {
		charset = strings.ToLower(config.Encoding)
	}

	return &Renderer{
		config:      config,
		declaration: decl,
		enc:         enc,
		charset:     charset,
	}, nil
}

// Declaration returns the document type declaration.
func (r *Renderer) Declaration() string {
	return r.declaration
}

// Charset returns the canonical name of the output encoding.
func (r *Renderer) Charset() string {
	return r.charset
}

// ContentType returns mediaType qualified with the output charset.
func (r *Renderer) ContentType(mediaType string) string {
	return mediaType + "; charset=" + r.charset
}

// RenderToString returns the declaration immediately followed by the
// serialization of root.
func (r *Renderer) RenderToString(root *markup.Node) string {
	var b strings.Builder
	b.WriteString(r.declaration)
	b.WriteString(root.Serialize())
	return b.String()
}

// RenderToWriter renders root and writes it in the output encoding.
func (r *Renderer) RenderToWriter(w io.Writer, root *markup.Node) error {
	_, err := r.Encode(w, r.RenderToString(root))
	return err
}

// Encode writes s to w in the output encoding. Characters the encoding
// cannot represent are written as numeric character references.
func (r *Renderer) Encode(w io.Writer, s string) (int, error) {
	out := s
	if r.charset != "utf-8" {
		var err error
		out, err = encoding.HTMLEscapeUnsupported(r.enc.NewEncoder()).String(s)
		if err != nil {
			return 0, xerrors.New(xerrors.CodeWriteFailed).
				WithDetailf("cannot encode output as %s", r.charset).
				Wrap(err)
		}
	}

	n, err := io.WriteString(w, out)
	if err != nil {
		return n, xerrors.New(xerrors.CodeWriteFailed).Wrap(err)
	}
	return n, nil
}
