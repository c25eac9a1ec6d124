// Package render turns an assembled document root into its final byte form.
//
// It owns the pieces of output that sit around the element tree itself:
//
//   - document type declarations, selected by name
//   - charset transcoding of the finished string
//   - escaping helpers for callers preparing text and attribute values
//   - a well-formedness check of generated output
//
// The element tree is serialized by the markup package and is never escaped
// here. Callers that place untrusted text into a document use EscapeText and
// EscapeAttr before handing the values to a constructor.
//
// # Basic Usage
//
//	r, err := render.NewRenderer(render.RendererConfig{
//	    Doctype:  "xhtml1-strict",
//	    Encoding: "utf-8",
//	})
//	if err != nil {
//	    return err
//	}
//	out := r.RenderToString(root)
//	_, err = r.Encode(w, out)
package render
