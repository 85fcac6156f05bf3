// Package main provides the sqltemplate command.
package main

import (
	"os"

	"github.com/Guadalsistema/go-sqltemplate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
