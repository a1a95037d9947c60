// gbank is a command line interface to a custodial bank account ledger.
package main

import (
	"fmt"
	"os"

	"github.com/tos-network/gbank/params"
	"github.com/urfave/cli/v2"
)

const clientIdentifier = "gbank"

var (
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""

	app = cli.NewApp()
)

func init() {
	app.Name = clientIdentifier
	app.Usage = "command line interface to the gbank custodial ledger"
	app.Version = params.VersionWithCommit(gitCommit, gitDate)
	app.HideVersion = true
	app.Flags = []cli.Flag{
		dataDirFlag,
		configFileFlag,
	}
	app.Commands = []*cli.Command{
		initCommand,
		depositCommand,
		withdrawCommand,
		balanceCommand,
		notesCommand,
		versionCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
