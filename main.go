package main

import (
	"github.com/Bibendus83/period/cmd"
)

func main() {
	cmd.Execute()
}
