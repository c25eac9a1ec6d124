// Package document assembles markup documents through a registry session.
//
// A Document holds at most one node per tag name. Every constructor call
// either creates the node for its tag or merges into the node already
// registered under that tag:
//
//	d, _ := document.New(document.Params{Lang: "en", Encoding: "utf-8"})
//	d.P("hello")
//	p, _ := d.P(" world")          // <p>hello world</p>
//	d.Link(markup.Rel("stylesheet"))
//	d.Link(markup.Href("a.css"))   // <link rel="stylesheet" href="a.css"/>
//
// The merge applies to unrelated elements too: two div calls meant as
// siblings end up as one div with concatenated content. Use a fresh
// Document for each independent document.
//
// Nodes are captured as serialized text when they are appended to a parent.
// Build every child completely before passing it to its parent:
//
//	title, _ := d.Title("Hello")
//	head, _ := d.Head(title)
//	body, _ := d.Body(document.Must(d.P("hi")))
//	d.Doc(head, body)
//	out, err := d.Generate()
//
// Doc stitches head and body into the html root; it is called exactly once
// per session, and Generate and Output fail until it has been called.
//
// No value is escaped. Callers pass untrusted text through
// render.EscapeText or render.EscapeAttr first.
package document
