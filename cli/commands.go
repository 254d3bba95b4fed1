package cli

import (
	"github.com/robinvdvleuten/networth/config"
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool   `help:"Show timing telemetry for operations."`
	Config    string `help:"Configuration file (defaults to networth.yaml in the user config directory)." type:"path" placeholder:"PATH"`
}

// LoadConfig reads the configuration file. The default file may be absent;
// a file named with --config must exist.
func (g *Globals) LoadConfig() (*config.Config, error) {
	if g.Config == "" {
		return config.Load(config.DefaultPath())
	}
	return config.Read(g.Config)
}

// ConfigPath returns the configuration file in use.
func (g *Globals) ConfigPath() string {
	if g.Config == "" {
		return config.DefaultPath()
	}
	return g.Config
}

type Commands struct {
	Globals

	Summary SummaryCmd `cmd:"" default:"withargs" help:"Summarize net worth, accounts and spending of a ledger."`
	Graph   GraphCmd   `cmd:"" help:"Chart monthly balances of a ledger in the browser."`
	Dump    DumpCmd    `cmd:"" help:"Print the parsed transactions of a ledger."`
	Init    InitCmd    `cmd:"" help:"Write a default configuration file."`
	Doctor  DoctorCmd  `cmd:"" help:"Doctor utilities for debugging ledger files."`
}
