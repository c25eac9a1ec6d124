package markup

import (
	"fmt"

	xerrors "github.com/cyb3rnet/xhtml/internal/errors"
)

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidContentKind error = xerrors.New(xerrors.CodeInvalidContentKind)
	ErrEmptyTagName       error = xerrors.New(xerrors.CodeEmptyTagName)
)

func invalidContentKind(source string, payload any) error {
	return xerrors.New(xerrors.CodeInvalidContentKind).
		WithDetail(fmt.Sprintf("content inserted in %q must be a string or an element node, got %T", source, payload))
}
