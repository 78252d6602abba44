package main

import (
	"fmt"
	"os"

	ansiscan "github.com/ansiscan/ansiscan/src"
)

func main() {
	opts := ansiscan.ParseOptions()
	code, err := ansiscan.Run(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ansiscan: "+err.Error())
	}
	os.Exit(code)
}
