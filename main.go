package main

import (
	"os"

	"github.com/thenoetrevino/todoapi/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
