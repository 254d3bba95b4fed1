package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/networth/cli"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was built
	// against. It's set via ldflags when building.
	CommitSHA = ""
)

type CLI struct {
	Version kong.VersionFlag `help:"Show version information"`
	cli.Commands
}

func newParser(c *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("networth"),
		kong.Description("Tells you how poor you are."),
		kong.UsageOnError(),
		kong.Bind(&c.Globals),
	}, options...)
	return kong.New(c, options...)
}

func main() {
	var c CLI
	parser, err := newParser(&c)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	result := cli.Result(ctx.Run())
	if result.Err != nil && !cli.IsCommandError(result.Err) {
		ctx.FatalIfErrorf(result.Err)
	}
	os.Exit(result.ExitCode)
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
