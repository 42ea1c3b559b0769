package state

// LoadingState tracks the single photo read allowed in flight at a time.
type LoadingState struct {
	inFlight bool
	seq      int
	label    string
}

// NewLoadingState creates an idle LoadingState.
func NewLoadingState() *LoadingState {
	return &LoadingState{}
}

// Start marks a read as in flight and returns its tag. ok is false when a
// read is already running.
func (s *LoadingState) Start(label string) (seq int, ok bool) {
	if s.inFlight {
		return 0, false
	}
	s.inFlight = true
	s.label = label
	s.seq++
	return s.seq, true
}

// Finish ends the read tagged seq. It reports false for unknown tags.
func (s *LoadingState) Finish(seq int) bool {
	if !s.inFlight || seq != s.seq {
		return false
	}
	s.inFlight = false
	s.label = ""
	return true
}

// InFlight reports whether a read is running.
func (s *LoadingState) InFlight() bool {
	return s.inFlight
}

// Label describes the running read.
func (s *LoadingState) Label() string {
	return s.label
}
