package main

import (
	"github.com/cellviz/nicodash/cmd/app"
)

func main() {
	app.Run()
}
