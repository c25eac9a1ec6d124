package document

// Observer receives registry events. Implementations must be safe for use
// by several documents at once.
type Observer interface {
	// NodeCreated is called when a tag is registered for the first time.
	NodeCreated(tag string)
	// NodeMerged is called when a call folds into an existing node.
	NodeMerged(tag string)
	// DocumentGenerated is called with the size of each generated document.
	DocumentGenerated(bytes int)
	// Failed is called with the error code of every failed operation.
	Failed(code string)
}

type nopObserver struct{}

func (nopObserver) NodeCreated(string)    {}
func (nopObserver) NodeMerged(string)     {}
func (nopObserver) DocumentGenerated(int) {}
func (nopObserver) Failed(string)         {}
