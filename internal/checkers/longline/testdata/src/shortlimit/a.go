package shortlimit

var wide = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" // want `line is \d+ characters, over the 40 maximum`

var ok = "b"
