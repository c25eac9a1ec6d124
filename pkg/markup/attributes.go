package markup

import (
	"sort"
	"strconv"
	"strings"
)

// Attr is a single attribute.
type Attr struct {
	Name  string
	Value string
}

// IsEmpty returns true if this is an unnamed attribute.
func (a Attr) IsEmpty() bool {
	return a.Name == ""
}

// Attrs is an ordered list of attributes.
type Attrs []Attr

// Pairs builds Attrs from alternating names and values. A trailing name
// without a value gets an empty value.
func Pairs(kv ...string) Attrs {
	attrs := make(Attrs, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		a := Attr{Name: kv[i]}
		if i+1 < len(kv) {
			a.Value = kv[i+1]
		}
		attrs = append(attrs, a)
	}
	return attrs
}

// FromMap builds Attrs from a map. Keys are ordered lexically since maps
// carry no order of their own.
func FromMap(m map[string]string) Attrs {
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	attrs := make(Attrs, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, Attr{Name: name, Value: m[name]})
	}
	return attrs
}

// Get returns the value of the last attribute with the given name.
func (a Attrs) Get(name string) (string, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i].Name == name {
			return a[i].Value, true
		}
	}
	return "", false
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return Attr{"id", id} }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return Attr{"class", strings.Join(classes, " ")} }

// StyleAttr sets the style attribute (named to avoid confusion with the style element).
func StyleAttr(style string) Attr { return Attr{"style", style} }

// TitleAttr sets the title attribute (named to avoid confusion with the title element).
func TitleAttr(title string) Attr { return Attr{"title", title} }

// Data creates a data-* attribute.
func Data(key, value string) Attr { return Attr{"data-" + key, value} }

// Language attributes

// Lang sets the lang attribute.
func Lang(lang string) Attr { return Attr{"lang", lang} }

// XMLLang sets the xml:lang attribute.
func XMLLang(lang string) Attr { return Attr{"xml:lang", lang} }

// Dir sets the dir attribute.
func Dir(dir string) Attr { return Attr{"dir", dir} }

// Xmlns sets the xmlns attribute.
func Xmlns(ns string) Attr { return Attr{"xmlns", ns} }

// Links and resources

// Href sets the href attribute.
func Href(url string) Attr { return Attr{"href", url} }

// Src sets the src attribute.
func Src(url string) Attr { return Attr{"src", url} }

// Alt sets the alt attribute.
func Alt(text string) Attr { return Attr{"alt", text} }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return Attr{"rel", rel} }

// Type sets the type attribute.
func Type(t string) Attr { return Attr{"type", t} }

// Media sets the media attribute.
func Media(media string) Attr { return Attr{"media", media} }

// Metadata

// Name sets the name attribute.
func Name(name string) Attr { return Attr{"name", name} }

// ContentAttr sets the content attribute of meta elements.
func ContentAttr(content string) Attr { return Attr{"content", content} }

// HTTPEquiv sets the http-equiv attribute.
func HTTPEquiv(v string) Attr { return Attr{"http-equiv", v} }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return Attr{"charset", charset} }

// Forms

// Value sets the value attribute.
func Value(v string) Attr { return Attr{"value", v} }

// Action sets the action attribute.
func Action(url string) Attr { return Attr{"action", url} }

// Method sets the method attribute.
func Method(method string) Attr { return Attr{"method", method} }

// For sets the for attribute.
func For(id string) Attr { return Attr{"for", id} }

// Tables and media

// Width sets the width attribute.
func Width(w int) Attr { return Attr{"width", strconv.Itoa(w)} }

// Height sets the height attribute.
func Height(h int) Attr { return Attr{"height", strconv.Itoa(h)} }

// Colspan sets the colspan attribute.
func Colspan(n int) Attr { return Attr{"colspan", strconv.Itoa(n)} }

// Rowspan sets the rowspan attribute.
func Rowspan(n int) Attr { return Attr{"rowspan", strconv.Itoa(n)} }
