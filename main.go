package main

import (
	"github.com/jjtimmons/chad/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
