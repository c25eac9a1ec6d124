package blueprint

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cyb3rnet/xhtml/internal/errors"
	"github.com/cyb3rnet/xhtml/pkg/document"
	"github.com/cyb3rnet/xhtml/pkg/markup"
)

// MaxInputSize limits blueprint input (default 1MB).
var MaxInputSize = 1 << 20

// Blueprint is a parsed document description.
type Blueprint struct {
	Lang     string   `yaml:"lang,omitempty"`
	Encoding string   `yaml:"encoding,omitempty"`
	Doctype  string   `yaml:"doctype,omitempty"`
	Head     *Element `yaml:"head,omitempty"`
	Body     *Element `yaml:"body,omitempty"`

	// Source is the file the blueprint was read from, if any.
	Source string `yaml:"-"`
}

// Element is one element of the tree.
type Element struct {
	Tag         string        `yaml:"tag,omitempty"`
	Attrs       yaml.MapSlice `yaml:"attrs,omitempty"`
	SelfClosing *bool         `yaml:"selfClosing,omitempty"`
	Content     any           `yaml:"content,omitempty"`

	items []Item
}

// ItemKind discriminates content items.
type ItemKind uint8

const (
	ItemClear    ItemKind = iota // null
	ItemText                     // plain string
	ItemMarkdown                 // {markdown: ...}
	ItemElement                  // nested element
	ItemValue                    // any other scalar, passed through as is
)

// Item is one normalized content item.
type Item struct {
	Kind    ItemKind
	Text    string
	Element *Element
	Value   any
}

// Items returns the normalized content items.
func (e *Element) Items() []Item {
	return e.items
}

// Load reads and parses the blueprint at path.
func Load(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeBlueprintRead).
			WithDetail(path).
			Wrap(err)
	}
	return Parse(data, path)
}

// Parse parses blueprint data. source names the data in error locations and
// may be empty.
func Parse(data []byte, source string) (*Blueprint, error) {
	if len(data) == 0 {
		return nil, errors.New(errors.CodeBlueprintInvalid).WithDetail("empty blueprint")
	}
	if len(data) > MaxInputSize {
		return nil, errors.New(errors.CodeBlueprintInvalid).
			WithDetailf("%d bytes exceeds the %d byte limit", len(data), MaxInputSize)
	}

	bp := &Blueprint{Source: source}
	if err := yaml.UnmarshalWithOptions(data, bp, yaml.Strict(), yaml.UseOrderedMap()); err != nil {
		return nil, parseError(err, source)
	}

	if bp.Head != nil {
		if err := bp.Head.normalize("head"); err != nil {
			return nil, err
		}
	}
	if bp.Body != nil {
		if err := bp.Body.normalize("body"); err != nil {
			return nil, err
		}
	}
	return bp, nil
}

func parseError(err error, source string) error {
	e := errors.New(errors.CodeBlueprintParse).Wrap(err)

	var yerr yaml.Error
	if stderrors.As(err, &yerr) {
		e = e.WithDetail(yerr.GetMessage())
		if tok := yerr.GetToken(); tok != nil && tok.Position != nil && source != "" {
			e = e.WithLocation(source, tok.Position.Line, tok.Position.Column)
		}
	}
	return e
}

// Params returns base with the blueprint's document settings applied over it.
func (bp *Blueprint) Params(base document.Params) document.Params {
	if bp.Lang != "" {
		base.Lang = bp.Lang
	}
	if bp.Encoding != "" {
		base.Encoding = bp.Encoding
	}
	if bp.Doctype != "" {
		base.Doctype = bp.Doctype
	}
	return base
}

// MarkupAttrs converts the attributes to markup attributes, keeping their
// order. Values are stringified; null becomes the empty string.
func (e *Element) MarkupAttrs() markup.Attrs {
	attrs := make(markup.Attrs, 0, len(e.Attrs))
	for _, item := range e.Attrs {
		attrs = append(attrs, markup.Attr{Name: scalar(item.Key), Value: scalar(item.Value)})
	}
	return attrs
}

func scalar(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func (e *Element) normalize(path string) error {
	e.items = e.items[:0]

	var raw []any
	switch c := e.Content.(type) {
	case nil:
	case []any:
		raw = c
	default:
		raw = []any{c}
	}

	for i, v := range raw {
		at := fmt.Sprintf("%s.content[%d]", path, i)
		item, err := toItem(v, at)
		if err != nil {
			return err
		}
		e.items = append(e.items, item)
	}
	return nil
}

func toItem(v any, path string) (Item, error) {
	switch v := v.(type) {
	case nil:
		return Item{Kind: ItemClear}, nil
	case string:
		return Item{Kind: ItemText, Text: v}, nil
	case yaml.MapSlice:
		if len(v) == 1 && scalar(v[0].Key) == "markdown" {
			text, ok := v[0].Value.(string)
			if !ok {
				return Item{}, invalid(path, "markdown must be a string")
			}
			return Item{Kind: ItemMarkdown, Text: text}, nil
		}
		el, err := toElement(v, path)
		if err != nil {
			return Item{}, err
		}
		return Item{Kind: ItemElement, Element: el}, nil
	case []any:
		return Item{}, invalid(path, "nested lists are not content")
	default:
		return Item{Kind: ItemValue, Value: v}, nil
	}
}

func toElement(m yaml.MapSlice, path string) (*Element, error) {
	el := &Element{}
	for _, item := range m {
		key := scalar(item.Key)
		switch key {
		case "tag":
			tag, ok := item.Value.(string)
			if !ok {
				return nil, invalid(path, "tag must be a string")
			}
			el.Tag = tag
		case "attrs":
			switch attrs := item.Value.(type) {
			case nil:
			case yaml.MapSlice:
				el.Attrs = attrs
			default:
				return nil, invalid(path, "attrs must be a mapping")
			}
		case "selfClosing":
			b, ok := item.Value.(bool)
			if !ok {
				return nil, invalid(path, "selfClosing must be a boolean")
			}
			el.SelfClosing = &b
		case "content":
			el.Content = item.Value
		default:
			return nil, invalid(path, fmt.Sprintf("unknown key %q", key))
		}
	}
	if el.Tag == "" {
		return nil, invalid(path, "element has no tag")
	}

	if err := el.normalize(path + "." + el.Tag); err != nil {
		return nil, err
	}
	return el, nil
}

func invalid(path, msg string) error {
	return errors.New(errors.CodeBlueprintInvalid).WithDetailf("%s: %s", path, msg)
}
