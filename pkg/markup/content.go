package markup

// ContentKind is the Content case discriminator.
type ContentKind uint8

const (
	ContentEmpty   ContentKind = iota // clears the buffer
	ContentText                       // appended verbatim
	ContentElement                    // appended as a rendered snapshot
)

// String returns the string representation of the ContentKind.
func (k ContentKind) String() string {
	switch k {
	case ContentEmpty:
		return "Empty"
	case ContentText:
		return "Text"
	case ContentElement:
		return "Element"
	default:
		return "Unknown"
	}
}

// Content is a value that can be appended to a Node. The zero value clears.
type Content struct {
	kind ContentKind
	text string
	node *Node
}

// Clear returns the content that resets a node's buffer.
func Clear() Content {
	return Content{kind: ContentEmpty}
}

// Text returns text content. The empty string clears.
func Text(s string) Content {
	if s == "" {
		return Clear()
	}
	return Content{kind: ContentText, text: s}
}

// Element returns node content. A nil node clears.
func Element(n *Node) Content {
	if n == nil {
		return Clear()
	}
	return Content{kind: ContentElement, node: n}
}

// Kind returns the content case.
func (c Content) Kind() ContentKind {
	return c.kind
}

// Text returns the text of a ContentText value.
func (c Content) Text() string {
	return c.text
}

// Node returns the node of a ContentElement value.
func (c Content) Node() *Node {
	return c.node
}

// ContentRef pairs a content value with the name of the constructor that
// supplied it. It lives only for the duration of one append.
type ContentRef struct {
	source  string
	payload any
}

// NewContentRef creates a ContentRef.
func NewContentRef(source string, payload any) ContentRef {
	return ContentRef{source: source, payload: payload}
}

// Source returns the name of the constructor that supplied the payload.
func (r ContentRef) Source() string {
	return r.source
}

// Payload returns the raw content value.
func (r ContentRef) Payload() any {
	return r.payload
}

// Resolve converts the payload into Content. Accepted kinds are nil, string,
// *Node and Content; anything else fails with ErrInvalidContentKind naming
// the source.
func (r ContentRef) Resolve() (Content, error) {
	switch v := r.payload.(type) {
	case nil:
		return Clear(), nil
	case string:
		return Text(v), nil
	case *Node:
		return Element(v), nil
	case Content:
		return v, nil
	default:
		return Content{}, invalidContentKind(r.source, r.payload)
	}
}
