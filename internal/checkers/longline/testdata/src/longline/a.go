package longline

var wide = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" // want `line is \d+ characters, over the 120 maximum`

var narrow = "ok"

func f() string {
	return wide + narrow
}
