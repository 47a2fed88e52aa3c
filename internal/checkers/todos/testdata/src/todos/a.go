package todos

// TODO implement real logic // want "comment contains a TODO marker"
func f() {}

// FIXME breaks on empty input // want "comment contains a FIXME marker"
func g() {}

// a perfectly ordinary comment
func h() {}
