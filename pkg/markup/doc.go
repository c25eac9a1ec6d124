// Package markup provides the element-node model of the xhtml assembler.
//
// A Node is one markup element: an immutable tag name and self-closing flag,
// an ordered attribute list, and a single accumulated content buffer. Nodes
// serialize themselves; nested nodes are rendered into the parent's buffer at
// the moment they are appended.
//
// # Content
//
// Content is a tagged union with three cases:
//
//	Clear()      // resets the buffer
//	Text(s)      // appends s verbatim
//	Element(n)   // appends n's serialization as of now
//
// ContentRef pairs a dynamically typed value with the name of the
// constructor about to append it, so that a value of the wrong kind can be
// reported against the call that supplied it.
//
// # Snapshot semantics
//
// Appending an Element captures its rendered string; later changes to the
// child are not reflected in the parent. Build every node bottom-up: finish
// a child before appending it.
//
// # Escaping
//
// Attribute values and text are written verbatim. Escaping is the caller's
// responsibility; see the render package for helpers.
package markup
