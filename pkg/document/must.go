package document

import "github.com/cyb3rnet/xhtml/pkg/markup"

// Must returns n, panicking if err is non-nil. It lets constructor calls
// nest inside one another.
func Must(n *markup.Node, err error) *markup.Node {
	if err != nil {
		panic(err)
	}
	return n
}
