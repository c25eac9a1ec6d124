package blueprint

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/cyb3rnet/xhtml/internal/errors"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		html.WithXHTML(),
	),
)

// RenderMarkdown converts markdown to an XHTML fragment.
func RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", errors.New(errors.CodeBlueprintInvalid).
			WithDetail("cannot render markdown").
			Wrap(err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
