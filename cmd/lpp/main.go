/*
File    : lpp/cmd/lpp/main.go
*/
package main

import (
	"fmt"
	"os"

	"github.com/lpp-lang/lpp/cmd/lpp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
