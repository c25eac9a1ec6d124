package markup

import "sort"

// elements maps every known element name to its self-closing flag.
var elements = map[string]bool{
	// Document structure
	"html": false, "head": false, "body": false, "title": false,
	"base": true, "meta": true, "link": true,
	"style": false, "script": false, "noscript": false, "template": false,

	// Sectioning and headings
	"header": false, "footer": false, "main": false, "nav": false,
	"section": false, "article": false, "aside": false, "address": false,
	"h1": false, "h2": false, "h3": false, "h4": false, "h5": false, "h6": false,
	"hgroup": false,

	// Block text
	"div": false, "p": false, "pre": false, "blockquote": false,
	"ul": false, "ol": false, "li": false, "dl": false, "dt": false, "dd": false,
	"hr": true, "figure": false, "figcaption": false, "ins": false, "del": false,

	// Inline text
	"a": false, "span": false, "bdo": false, "bdi": false, "br": true, "wbr": true,
	"em": false, "strong": false, "dfn": false, "code": false, "samp": false,
	"kbd": false, "var": false, "cite": false, "abbr": false, "acronym": false,
	"q": false, "sub": false, "sup": false, "tt": false, "i": false, "b": false,
	"u": false, "s": false, "big": false, "small": false, "mark": false,
	"time": false, "data": false, "ruby": false, "rt": false, "rp": false,

	// Embedded content
	"object": false, "param": true, "img": true, "map": false, "area": true,
	"iframe": false, "embed": true, "picture": false, "source": true,
	"video": false, "audio": false, "track": true, "canvas": false,
	"svg": false, "math": false,

	// Forms
	"form": false, "label": false, "input": true, "textarea": false,
	"select": false, "option": false, "optgroup": false, "fieldset": false,
	"legend": false, "button": false, "datalist": false, "output": false,
	"progress": false, "meter": false,

	// Tables
	"table": false, "caption": false, "thead": false, "tfoot": false,
	"tbody": false, "colgroup": false, "col": true, "tr": false,
	"th": false, "td": false,

	// Interactive
	"details": false, "summary": false, "dialog": false, "menu": false,
}

// IsSelfClosing reports whether tag is a known self-closing element.
func IsSelfClosing(tag string) bool {
	return elements[tag]
}

// IsKnownElement reports whether tag is in the element table.
func IsKnownElement(tag string) bool {
	_, ok := elements[tag]
	return ok
}

// ElementNames returns all known element names, sorted.
func ElementNames() []string {
	names := make([]string, 0, len(elements))
	for name := range elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
