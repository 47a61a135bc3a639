package apply

import "errors"

// These name the debug-only invariant violations verify checks before any
// mutation happens. Seeing one panic means the caller applied a match the
// finder never produced (or hand-built an inconsistent one): a
// programming error, not a runtime condition to recover from.
var (
	errMissingEdgeImage   = errors.New("apply: deleted edge has no image in host graph")
	errMissingNodeImage   = errors.New("apply: deleted node has no image in host graph")
	errDanglingAfterMerge = errors.New("apply: deleted node would retain incident edges")
)
