package render

import (
	"encoding/xml"
	stderrors "errors"
	"strings"

	"github.com/antchfx/xmlquery"

	xerrors "github.com/cyb3rnet/xhtml/internal/errors"
)

// Parse parses a generated document as XML. HTML named entities such as
// &nbsp; are accepted.
func Parse(doc string) (*xmlquery.Node, error) {
	root, err := xmlquery.ParseWithOptions(strings.NewReader(doc), xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{
			Strict: true,
			Entity: xml.HTMLEntity,
		},
	})
	if err != nil {
		e := xerrors.New(xerrors.CodeNotWellFormed).Wrap(err)
		var syntax *xml.SyntaxError
		if stderrors.As(err, &syntax) {
			e = e.WithDetailf("line %d: %s", syntax.Line, syntax.Msg)
		}
		return nil, e
	}
	return root, nil
}

// CheckWellFormed parses doc and returns the name of its root element.
func CheckWellFormed(doc string) (string, error) {
	root, err := Parse(doc)
	if err != nil {
		return "", err
	}
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n.Data, nil
		}
	}
	return "", xerrors.New(xerrors.CodeNotWellFormed).WithDetail("document has no root element")
}
