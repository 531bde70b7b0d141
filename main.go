package main

import (
	"github.com/rpaste-cli/rpaste/cmd"
)

func main() {
	cmd.Execute()
}
