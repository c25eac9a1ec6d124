package errors

// Registered error codes.
const (
	CodeMissingInitParameter = "E001"
	CodeInvalidContentKind   = "E002"
	CodeDocumentNotBuilt     = "E003"
	CodeEmptyTagName         = "E004"
	CodeDocumentAlreadyBuilt = "E005"

	CodeUnknownDoctype      = "E010"
	CodeUnsupportedEncoding = "E011"
	CodeConfigNotFound      = "E020"
	CodeConfigInvalid       = "E021"

	CodeBlueprintRead    = "E030"
	CodeBlueprintParse   = "E031"
	CodeUnknownElement   = "E032"
	CodeBlueprintInvalid = "E033"

	CodeNotWellFormed = "E040"
	CodeWriteFailed   = "E041"

	CodePublishFailed = "E050"
	CodePreviewFailed = "E060"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Assembler Errors (E001-E009)
	// ============================================

	CodeMissingInitParameter: {
		Category:   CategoryConfig,
		Message:    "Missing initialization parameter",
		Suggestion: "Both the language code (short_lang) and the encoding must be set before building a document",
	},
	CodeInvalidContentKind: {
		Category:   CategoryContent,
		Message:    "Invalid content kind",
		Suggestion: "Content must be a string or a node created by the same document",
	},
	CodeDocumentNotBuilt: {
		Category:   CategoryDocument,
		Message:    "Document not built",
		Suggestion: "Call Doc(head, body) before Generate or Output",
	},
	CodeEmptyTagName: {
		Category: CategoryContent,
		Message:  "Empty tag name",
	},
	CodeDocumentAlreadyBuilt: {
		Category:   CategoryDocument,
		Message:    "Document already built",
		Suggestion: "Doc(head, body) may be called once per document; start a new document instead",
	},

	// ============================================
	// Configuration Errors (E010-E029)
	// ============================================

	CodeUnknownDoctype: {
		Category:   CategoryConfig,
		Message:    "Unknown doctype",
		Suggestion: "Use one of: xhtml11, xhtml1-strict, xhtml1-trans, xhtml1-frame, html5, html4-strict, html4-trans, html4-frame",
	},
	CodeUnsupportedEncoding: {
		Category:   CategoryConfig,
		Message:    "Unsupported character encoding",
		Suggestion: "Use a WHATWG encoding label such as utf-8 or iso-8859-1",
	},
	CodeConfigNotFound: {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Suggestion: "Run 'xhtml init' to create xhtml.json",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},

	// ============================================
	// Blueprint Errors (E030-E039)
	// ============================================

	CodeBlueprintRead: {
		Category: CategoryBlueprint,
		Message:  "Cannot read blueprint",
	},
	CodeBlueprintParse: {
		Category:   CategoryBlueprint,
		Message:    "Cannot parse blueprint",
		Suggestion: "Blueprints are YAML (or JSON) documents with head and body sections",
	},
	CodeUnknownElement: {
		Category:   CategoryBlueprint,
		Message:    "Unknown element",
		Suggestion: "Set selfClosing explicitly for elements outside the built-in element table",
	},
	CodeBlueprintInvalid: {
		Category: CategoryBlueprint,
		Message:  "Invalid blueprint",
	},

	// ============================================
	// Output Errors (E040-E049)
	// ============================================

	CodeNotWellFormed: {
		Category: CategoryOutput,
		Message:  "Generated markup is not well-formed",
	},
	CodeWriteFailed: {
		Category: CategoryOutput,
		Message:  "Cannot write output",
	},

	// ============================================
	// Outer Surfaces (E050-E069)
	// ============================================

	CodePublishFailed: {
		Category: CategoryPublish,
		Message:  "Publish failed",
	},
	CodePreviewFailed: {
		Category: CategoryCLI,
		Message:  "Preview server failed",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
