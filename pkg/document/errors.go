package document

import xerrors "github.com/cyb3rnet/xhtml/internal/errors"

// Sentinel errors for use with errors.Is.
var (
	ErrMissingInitParameter error = xerrors.New(xerrors.CodeMissingInitParameter)
	ErrDocumentNotBuilt     error = xerrors.New(xerrors.CodeDocumentNotBuilt)
	ErrDocumentAlreadyBuilt error = xerrors.New(xerrors.CodeDocumentAlreadyBuilt)
	ErrUnknownDoctype       error = xerrors.New(xerrors.CodeUnknownDoctype)
	ErrUnsupportedEncoding  error = xerrors.New(xerrors.CodeUnsupportedEncoding)
)
