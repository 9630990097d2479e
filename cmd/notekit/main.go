package main

import (
	"os"

	"github.com/raveheart1/notekit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
