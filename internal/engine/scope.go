package engine

import "fmt"

// scopeInfo tracks one entry on the reader's scope stack: the mark it was
// opened with and its absolute byte range in the stream.
type scopeInfo struct {
	name  string
	mark  int32
	start int64
	end   int64
}

func (s scopeInfo) String() string {
	return fmt.Sprintf("%s(%s)", s.name, scopeMarkString(s.mark))
}

// scopeStackString renders the full stack, outermost first, for warning
// messages — mirroring the reference deserializer's practice of logging
// the entire stack alongside every structural-drift warning.
func scopeStackString(stack []scopeInfo) string {
	s := ""
	for i, entry := range stack {
		if i > 0 {
			s += " > "
		}
		s += entry.String()
	}
	return s
}
