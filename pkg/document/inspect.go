package document

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Tree renders the registry as a text tree: one branch per tag in creation
// order with its attributes and content size.
func (d *Document) Tree() string {
	tree := treeprint.NewWithRoot(fmt.Sprintf("document %s (%s, %s)", d.id, d.params.Lang, d.Charset()))

	for _, tag := range d.order {
		n := d.nodes[tag]
		kind := "element"
		if n.SelfClosing() {
			kind = "self-closing"
		}
		if n == d.root {
			kind = "root"
		}

		branch := tree.AddMetaBranch(kind, tag)
		for _, a := range n.Attrs() {
			branch.AddNode(fmt.Sprintf("%s=%q", a.Name, a.Value))
		}
		if !n.SelfClosing() {
			branch.AddMetaNode("content", fmt.Sprintf("%d bytes", len(n.Content())))
		}
	}

	return tree.String()
}
