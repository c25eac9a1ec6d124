package render

import "sort"

// DefaultDoctype is used when no document type is configured.
const DefaultDoctype = "xhtml1-strict"

var doctypes = map[string]string{
	"xhtml11":       `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd">`,
	"xhtml1-strict": `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`,
	"xhtml1-trans":  `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`,
	"xhtml1-frame":  `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Frameset//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd">`,
	"html5":         `<!DOCTYPE html>`,
	"html4-strict":  `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
	"html4-trans":   `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`,
	"html4-frame":   `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Frameset//EN" "http://www.w3.org/TR/html4/frameset.dtd">`,
}

// Doctype returns the declaration registered under name.
// An empty name selects DefaultDoctype.
func Doctype(name string) (string, bool) {
	if name == "" {
		name = DefaultDoctype
	}
	decl, ok := doctypes[name]
	return decl, ok
}

// DoctypeNames returns the registered declaration names, sorted.
func DoctypeNames() []string {
	names := make([]string, 0, len(doctypes))
	for name := range doctypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
