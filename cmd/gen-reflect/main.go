package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/seitarof/gen-reflect/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(version, os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}
