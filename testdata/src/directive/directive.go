package directive

//perfileignores:ignore todo-comment - migration in progress

// TODO remove after the v2 migration
func f() {}

// FIXME still reported // want "comment contains a FIXME marker"
func g() {}
