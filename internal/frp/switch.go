package frp

type dSwitch[A, B any] struct {
	current SF[A, B]
	pred    func(B) bool
	build   func(B) SF[A, B]
	closed  bool
}

// DSwitch is a delayed one-way switch. While open, each step runs sf and
// tests its output with pred; on the first true, build constructs a
// replacement SF from the triggering value and the switch closes
// permanently. The triggering step still returns sf's own output; the
// replacement takes over from the next step onward. Once closed, sf, pred
// and build are never consulted again.
//
// The transition commits only after build returns: a panic in pred or build
// leaves the switch open with no partial state.
func DSwitch[A, B any](sf SF[A, B], pred func(B) bool, build func(B) SF[A, B]) SF[A, B] {
	return &dSwitch[A, B]{current: sf, pred: pred, build: build}
}

func (s *dSwitch[A, B]) Step(dt float64, in A) B {
	out := s.current.Step(dt, in)
	if !s.closed && s.pred(out) {
		next := s.build(out)
		s.current = next
		s.closed = true
		s.pred = nil
		s.build = nil
	}
	return out
}
