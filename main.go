package main

import (
	"os"

	"eventhub-cli/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := cmd.Execute(version, commit); err != nil {
		os.Exit(1)
	}
}
