package main

import (
	"os"

	"github.com/dshills/codecloak/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
