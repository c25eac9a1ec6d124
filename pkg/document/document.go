package document

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	xerrors "github.com/cyb3rnet/xhtml/internal/errors"
	"github.com/cyb3rnet/xhtml/pkg/markup"
	"github.com/cyb3rnet/xhtml/pkg/render"
)

// Params are the document-level settings a session is created with.
type Params struct {
	// Lang is the short language code set on the html root. Required.
	Lang string

	// Encoding is the output charset. Required.
	Encoding string

	// Doctype names the document type declaration. Defaults to
	// render.DefaultDoctype.
	Doctype string
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithObserver sets the observer notified of registry events.
func WithObserver(o Observer) Option {
	return func(d *Document) {
		if o != nil {
			d.observer = o
		}
	}
}

// WithID sets the session id. Defaults to a random UUID.
func WithID(id string) Option {
	return func(d *Document) {
		if id != "" {
			d.id = id
		}
	}
}

// Document is one document-build session: a registry holding at most one
// node per tag name, and the assembled root once Doc has been called.
//
// A Document is not safe for concurrent use.
type Document struct {
	id       string
	params   Params
	renderer *render.Renderer
	logger   *slog.Logger
	observer Observer

	nodes map[string]*markup.Node
	order []string

	root      *markup.Node
	output    string
	generated bool
}

// New creates a session. Lang and Encoding are required; a missing one
// fails with ErrMissingInitParameter.
func New(params Params, opts ...Option) (*Document, error) {
	d := &Document{
		id:       uuid.NewString(),
		params:   params,
		logger:   slog.Default(),
		observer: nopObserver{},
		nodes:    make(map[string]*markup.Node),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With("document_id", d.id)

	switch {
	case params.Lang == "":
		return nil, d.fail(xerrors.New(xerrors.CodeMissingInitParameter).WithDetail("short_lang"))
	case params.Encoding == "":
		return nil, d.fail(xerrors.New(xerrors.CodeMissingInitParameter).WithDetail("encoding"))
	}

	r, err := render.NewRenderer(render.RendererConfig{
		Doctype:  params.Doctype,
		Encoding: params.Encoding,
	})
	if err != nil {
		return nil, d.fail(err)
	}
	d.renderer = r
	if d.params.Doctype == "" {
		d.params.Doctype = render.DefaultDoctype
	}

	return d, nil
}

// ID returns the session id.
func (d *Document) ID() string { return d.id }

// Lang returns the language code.
func (d *Document) Lang() string { return d.params.Lang }

// Encoding returns the encoding as configured.
func (d *Document) Encoding() string { return d.params.Encoding }

// Charset returns the canonical name of the output encoding.
func (d *Document) Charset() string { return d.renderer.Charset() }

// Doctype returns the name of the document type declaration.
func (d *Document) Doctype() string { return d.params.Doctype }

// Renderer returns the renderer used by Generate and Output.
func (d *Document) Renderer() *render.Renderer { return d.renderer }

// Build creates the node for tag, or merges into the node already registered
// under tag. The selfClosing flag only matters on creation.
//
// args may mix attributes (markup.Attr, markup.Attrs, []markup.Attr,
// map[string]string) with content values (string, *markup.Node,
// markup.Content, nil). Attributes are merged first, then each content value
// is appended in order. nil and "" clear the content. With no content value
// the content is left untouched.
//
// All args are checked before anything is changed: on error the registry is
// as it was.
func (d *Document) Build(tag string, selfClosing bool, args ...any) (*markup.Node, error) {
	var (
		attrs   markup.Attrs
		content []markup.Content
	)
	for _, arg := range args {
		switch v := arg.(type) {
		case markup.Attr:
			attrs = append(attrs, v)
		case markup.Attrs:
			attrs = append(attrs, v...)
		case []markup.Attr:
			attrs = append(attrs, v...)
		case map[string]string:
			attrs = append(attrs, markup.FromMap(v)...)
		default:
			c, err := markup.NewContentRef(tag, arg).Resolve()
			if err != nil {
				return nil, d.fail(err)
			}
			content = append(content, c)
		}
	}
	return d.buildOrMerge(tag, attrs, selfClosing, content)
}

func (d *Document) void(tag string, attrs markup.Attrs) *markup.Node {
	n, _ := d.buildOrMerge(tag, attrs, true, nil)
	return n
}

func (d *Document) buildOrMerge(tag string, attrs markup.Attrs, selfClosing bool, content []markup.Content) (*markup.Node, error) {
	if n, ok := d.nodes[tag]; ok {
		if len(attrs) > 0 {
			n.MergeAttrs(attrs)
		}
		for _, c := range content {
			n.Append(c)
		}
		d.observer.NodeMerged(tag)
		d.logger.Debug("node merged", "tag", tag, "attrs", len(attrs), "content", len(content))
		return n, nil
	}

	n, err := markup.NewNode(tag, attrs, selfClosing, content...)
	if err != nil {
		return nil, d.fail(err)
	}
	d.nodes[tag] = n
	d.order = append(d.order, tag)
	d.observer.NodeCreated(tag)
	d.logger.Debug("node created", "tag", tag, "self_closing", selfClosing)
	return n, nil
}

// Doc assembles the root: an html element carrying the lang attribute whose
// content is head followed by body, each captured as it is now. It goes
// through the registry like any other call, so an html node built earlier is
// merged into. Doc may be called once per session.
func (d *Document) Doc(head, body *markup.Node) (*markup.Node, error) {
	if d.root != nil {
		return nil, d.fail(xerrors.New(xerrors.CodeDocumentAlreadyBuilt))
	}

	if _, err := d.Build("html", false, markup.Lang(d.params.Lang), markup.Element(head)); err != nil {
		return nil, err
	}
	root, err := d.Build("html", false, markup.Element(body))
	if err != nil {
		return nil, err
	}

	d.root = root
	d.logger.Debug("document assembled", "tags", len(d.order))
	return root, nil
}

// Root returns the assembled root, or nil before Doc.
func (d *Document) Root() *markup.Node {
	return d.root
}

// Generate returns the document type declaration followed by the root
// serialization, and caches the result for Output.
func (d *Document) Generate() (string, error) {
	if d.root == nil {
		return "", d.fail(xerrors.New(xerrors.CodeDocumentNotBuilt))
	}

	d.output = d.renderer.RenderToString(d.root)
	d.generated = true
	d.observer.DocumentGenerated(len(d.output))
	d.logger.Debug("document generated", "bytes", len(d.output), "doctype", d.params.Doctype)
	return d.output, nil
}

// Output writes the generated document to w in the configured encoding,
// generating it first if Generate has not been called.
func (d *Document) Output(w io.Writer) error {
	if !d.generated {
		if _, err := d.Generate(); err != nil {
			return err
		}
	}
	if _, err := d.renderer.Encode(w, d.output); err != nil {
		return d.fail(err)
	}
	return nil
}

// Lookup returns the node registered under tag.
func (d *Document) Lookup(tag string) (*markup.Node, bool) {
	n, ok := d.nodes[tag]
	return n, ok
}

// Tags returns the registered tag names in creation order.
func (d *Document) Tags() []string {
	tags := make([]string, len(d.order))
	copy(tags, d.order)
	return tags
}

func (d *Document) fail(err error) error {
	d.observer.Failed(xerrors.CodeOf(err))
	return err
}
