// Package blueprint describes documents declaratively and builds them.
//
// A blueprint is a YAML (or JSON) file naming the document settings and the
// head and body trees:
//
//	lang: en
//	encoding: utf-8
//	head:
//	  content:
//	    - tag: title
//	      content: Hello
//	    - tag: link
//	      attrs: {rel: stylesheet, href: a.css}
//	body:
//	  attrs: {class: page}
//	  content:
//	    - tag: p
//	      content: ["hello", " world"]
//	    - markdown: "**bold**"
//
// Content items are strings, markdown items, nested elements, or null to
// clear what came before. Attributes keep their order from the file.
//
// Build walks the tree bottom-up through a document.Document, so the merge
// rules of the registry apply: two p elements anywhere in the blueprint
// become one node.
package blueprint
