package blueprint

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cyb3rnet/xhtml/internal/errors"
	"github.com/cyb3rnet/xhtml/pkg/document"
	"github.com/cyb3rnet/xhtml/pkg/markup"
)

const tracerName = "github.com/cyb3rnet/xhtml/internal/blueprint"

// Build builds bp into d and assembles the root with d.Doc. Children are
// built before their parents.
func Build(ctx context.Context, d *document.Document, bp *Blueprint) (*markup.Node, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "blueprint.Build",
		trace.WithAttributes(
			attribute.String("xhtml.document_id", d.ID()),
			attribute.String("xhtml.blueprint", bp.Source),
			attribute.String("xhtml.lang", d.Lang()),
		),
	)
	defer span.End()

	root, err := build(d, bp)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("xhtml.tags", len(d.Tags())))
	span.SetStatus(codes.Ok, "")
	return root, nil
}

func build(d *document.Document, bp *Blueprint) (*markup.Node, error) {
	head := bp.Head
	if head == nil {
		head = &Element{}
	}
	body := bp.Body
	if body == nil {
		body = &Element{}
	}

	headNode, err := buildElement(d, head, "head", "head")
	if err != nil {
		return nil, err
	}
	bodyNode, err := buildElement(d, body, "body", "body")
	if err != nil {
		return nil, err
	}
	return d.Doc(headNode, bodyNode)
}

func buildElement(d *document.Document, el *Element, defaultTag, path string) (*markup.Node, error) {
	tag := el.Tag
	if tag == "" {
		tag = defaultTag
	}

	var selfClosing bool
	switch {
	case el.SelfClosing != nil:
		selfClosing = *el.SelfClosing
	case markup.IsKnownElement(tag):
		selfClosing = markup.IsSelfClosing(tag)
	default:
		return nil, errors.New(errors.CodeUnknownElement).
			WithDetailf("%s: %q", path, tag)
	}

	items := el.Items()
	if selfClosing && len(items) > 0 {
		return nil, invalid(path, "self-closing element "+tag+" cannot have content")
	}

	args := make([]any, 0, len(items)+1)
	if len(el.Attrs) > 0 {
		args = append(args, el.MarkupAttrs())
	}
	for i, item := range items {
		switch item.Kind {
		case ItemClear:
			args = append(args, nil)
		case ItemText:
			args = append(args, item.Text)
		case ItemMarkdown:
			html, err := RenderMarkdown(item.Text)
			if err != nil {
				return nil, err
			}
			args = append(args, html)
		case ItemElement:
			child, err := buildElement(d, item.Element, "", childPath(path, i, item.Element.Tag))
			if err != nil {
				return nil, err
			}
			// Captured now: a later sibling with the same tag merges into
			// the same node.
			args = append(args, markup.Text(child.Serialize()))
		case ItemValue:
			args = append(args, item.Value)
		}
	}

	n, err := d.Build(tag, selfClosing, args...)
	if err != nil {
		return nil, errors.New(errors.CodeBlueprintInvalid).
			WithDetail(path).
			Wrap(err)
	}
	return n, nil
}

func childPath(path string, i int, tag string) string {
	return path + ".content[" + strconv.Itoa(i) + "]." + tag
}
