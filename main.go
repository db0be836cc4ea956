package main

import (
	"os"

	"github.com/gofolio/gofolio/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
