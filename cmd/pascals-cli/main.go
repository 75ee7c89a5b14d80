package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/tliron/commonlog"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was
	// built against. It's set via ldflags when building.
	CommitSHA = ""

	cli struct {
		Version kong.VersionFlag `help:"Show version information"`
		Globals

		Lex      LexCmd      `cmd:"" help:"Tokenize a source file and print the token listing."`
		Parse    ParseCmd    `cmd:"" help:"Parse a source file and print its syntax tree."`
		Analyze  AnalyzeCmd  `cmd:"" help:"Run full analysis and print the decorated tree and symbol table."`
		Validate ValidateCmd `cmd:"" help:"Validate an automaton rules file."`
	}
)

func main() {
	ctx := kong.Parse(&cli,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("pascals"),
		kong.Description("A compiler front end for a Pascal-like teaching language."),
		kong.UsageOnError(),
		kong.Bind(&cli.Globals),
	)

	commonlog.Configure(cli.Globals.Verbosity, nil)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	if Version == "" {
		Version = "dev"
	}
	if CommitSHA == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, CommitSHA)
}
