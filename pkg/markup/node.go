package markup

import (
	"io"
	"strings"

	xerrors "github.com/cyb3rnet/xhtml/internal/errors"
)

// Node is one markup element. Tag and self-closing flag are fixed at
// creation; attributes and content only grow, except that appending Clear()
// empties the content buffer.
//
// A Node is not safe for concurrent use.
type Node struct {
	tag         string
	selfClosing bool
	names       []string
	values      map[string]string
	content     strings.Builder
}

// NewNode creates a node. Attributes are merged in order. Each content value
// is appended in order; passing none leaves the buffer untouched.
func NewNode(tag string, attrs Attrs, selfClosing bool, content ...Content) (*Node, error) {
	if tag == "" {
		return nil, xerrors.New(xerrors.CodeEmptyTagName)
	}
	n := &Node{
		tag:         tag,
		selfClosing: selfClosing,
		values:      make(map[string]string),
	}
	if len(attrs) > 0 {
		n.MergeAttrs(attrs)
	}
	for _, c := range content {
		n.Append(c)
	}
	return n, nil
}

// Tag returns the element name.
func (n *Node) Tag() string {
	return n.tag
}

// SelfClosing reports whether the node serializes without a closing tag.
func (n *Node) SelfClosing() bool {
	return n.selfClosing
}

// Attr returns the value of an attribute.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.values[name]
	return v, ok
}

// Attrs returns a copy of the attributes in first-seen order.
func (n *Node) Attrs() Attrs {
	attrs := make(Attrs, 0, len(n.names))
	for _, name := range n.names {
		attrs = append(attrs, Attr{Name: name, Value: n.values[name]})
	}
	return attrs
}

// Content returns the accumulated content buffer.
func (n *Node) Content() string {
	return n.content.String()
}

// MergeAttrs sets each attribute. An existing name keeps its position and
// takes the new value; a new name is added at the end. Unnamed attributes
// are skipped.
func (n *Node) MergeAttrs(attrs Attrs) {
	if n.values == nil {
		n.values = make(map[string]string, len(attrs))
	}
	for _, a := range attrs {
		if a.IsEmpty() {
			continue
		}
		if _, exists := n.values[a.Name]; !exists {
			n.names = append(n.names, a.Name)
		}
		n.values[a.Name] = a.Value
	}
}

// Append applies c to the content buffer.
func (n *Node) Append(c Content) {
	switch c.kind {
	case ContentEmpty:
		n.content.Reset()
	case ContentText:
		n.content.WriteString(c.text)
	case ContentElement:
		// Rendered now: later changes to the child do not reach this buffer.
		n.content.WriteString(c.node.Serialize())
	}
}

// AppendRef resolves ref and appends it. Nothing is appended on error.
func (n *Node) AppendRef(ref ContentRef) error {
	c, err := ref.Resolve()
	if err != nil {
		return err
	}
	n.Append(c)
	return nil
}

// Serialize renders the node. Self-closing nodes render as <tag .../> and
// ignore their content buffer.
func (n *Node) Serialize() string {
	var b strings.Builder
	b.Grow(len(n.tag)*2 + 5 + n.content.Len())
	n.writeTo(&b)
	return b.String()
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.Serialize()
}

// WriteTo writes the serialization to w.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	k, err := io.WriteString(w, n.Serialize())
	return int64(k), err
}

func (n *Node) writeTo(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(n.tag)
	for _, name := range n.names {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(n.values[name])
		b.WriteByte('"')
	}

	if n.selfClosing {
		b.WriteString("/>")
		return
	}

	b.WriteByte('>')
	b.WriteString(n.content.String())
	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteByte('>')
}
