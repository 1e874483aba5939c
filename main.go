package main

import (
	"github.com/mcpconf/cli/cmd"
)

func main() {
	cmd.Execute()
}
