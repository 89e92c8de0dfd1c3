// A small demo application: greet someone, shout it, or add numbers.
//
//	go run ./example/greet greet --name Ada
//	go run ./example/greet greet --name Ada --caps
//	go run ./example/greet add -x 2 -y 40
package main

import (
	"fmt"
	"strings"

	hype "github.com/serumstudio/hype.cli"
)

func main() {
	app := hype.New(hype.WithName("greet"))

	greet := func(name string, caps bool) {
		msg := fmt.Sprintf("Hello, %s!", name)
		if caps {
			msg = strings.ToUpper(msg)
		}
		app.Echo(msg, hype.WithForeground("green"))
	}

	add := func(x, y int) {
		app.Echo(fmt.Sprintf("%d + %d = %d", x, y, x+y), hype.WithStyle("bold"))
	}

	app.MustCommand(greet,
		hype.WithCommandName("greet"),
		hype.WithAliases("hello"),
		hype.WithHelp("Greet someone by name."),
		hype.WithParams(
			hype.Param{Name: "name"},
			hype.Param{Name: "caps", Default: false, Short: "c"},
		),
	)

	app.MustCommand(add,
		hype.WithCommandName("add"),
		hype.WithHelp("Add two integers."),
		hype.WithParams(
			hype.Param{Name: "x"},
			hype.Param{Name: "y"},
		),
	)

	app.Run()
}
