package match

import "fmt"

// MatchError reports runtime misuse of the finder or a Match: mismatched
// directedness between a rule and its host graph, calling a finder
// method out of state-machine order, or mutating a frozen Match.
type MatchError struct {
	Msg string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("match: %s", e.Msg)
}

func newMatchError(format string, args ...any) error {
	return &MatchError{Msg: fmt.Sprintf(format, args...)}
}
