package traversal

import "fmt"

// DuplicateVisitorError is returned by Traverser.Register when the same
// visitor instance is registered twice (spec.md §4.3 "Registration
// rules", §7).
type DuplicateVisitorError struct {
	Visitor Visitor
}

func (e *DuplicateVisitorError) Error() string {
	return fmt.Sprintf("traversal: visitor %T already registered", e.Visitor)
}
