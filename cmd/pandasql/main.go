// Command pandasql converts pandas DataFrame expressions to SQL.
package main

import (
	"os"

	"github.com/roach88/pandasql/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	err := cmd.Execute()
	cli.ReportError(os.Stderr, err)
	os.Exit(cli.GetExitCode(err))
}
