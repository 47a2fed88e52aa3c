package printcall

import "fmt"

func f() {
	fmt.Println("hello")  // want `call to fmt\.Println`
	fmt.Printf("%d\n", 1) // want `call to fmt\.Printf`
	fmt.Print("x")        // want `call to fmt\.Print`

	println("builtin") // want `call to println`
	print("builtin")   // want `call to print`

	_ = fmt.Sprintf("%d", 2)
}

type logger struct{}

func (logger) Println(args ...any) {}

func g() {
	var l logger
	l.Println("not the fmt one")
}
