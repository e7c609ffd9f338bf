package main

import (
	"os"

	"antiseptic/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
