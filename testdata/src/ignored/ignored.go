package ignored

// TODO drop this shim once the importer is gone
func f() {}

// FIXME handle the empty case // want "comment contains a FIXME marker"
func g() {}
