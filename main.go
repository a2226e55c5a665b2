package main

import (
	"os"

	"github.com/isdelr/crud-auth-be/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
