package reported

// TODO implement caching // want "comment contains a TODO marker"
func f() {}

// FIXME wrong rounding mode // want "comment contains a FIXME marker"
func g() {}
