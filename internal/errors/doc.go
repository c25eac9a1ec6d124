// Package errors provides structured, coded errors for the xhtml assembler.
//
// Every failure the assembler can report has a registered code (e.g. "E002")
// mapping to a category, a short message, and a longer explanation:
//
//   - config: missing initialization parameters, unknown doctypes or charsets
//   - content: content values of an unsupported kind, empty tag names
//   - document: generation before the root was assembled
//   - blueprint: unreadable or invalid document descriptions
//   - output: generated markup that does not parse
//   - publish, cli: outer surfaces
//
// # Usage
//
//	err := errors.New("E002").
//	    WithDetail(`content passed to "p" must be a string or an element node, got int`).
//	    WithSuggestion("Convert the value with fmt.Sprint before appending it")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E002: Invalid content kind
//	//
//	//   content passed to "p" must be a string or an element node, got int
//	//
//	//   Hint: Convert the value with fmt.Sprint before appending it
//
// Errors compare by code, so errors.Is(err, errors.New("E003")) reports
// whether err carries code E003 anywhere in its chain.
package errors
