package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/networth/config"
)

// InitCmd writes the default configuration.
type InitCmd struct {
	Path  string `help:"Where to write the configuration (defaults to --config or the user config directory)." arg:"" optional:"" type:"path"`
	Force bool   `help:"Overwrite an existing file without asking." short:"f"`
}

func (cmd *InitCmd) Run(ctx *kong.Context, globals *Globals) error {
	path := cmd.Path
	if path == "" {
		path = globals.ConfigPath()
	}

	_, err := os.Stat(path)
	switch {
	case err == nil && !cmd.Force:
		confirmed, err := promptYesNo(fmt.Sprintf("File %q already exists. Overwrite it?", path))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			printWarning(ctx.Stderr, fmt.Sprintf("Kept existing configuration %s (use --force to overwrite)", pathStyle.Render(path)))
			return NewCommandError(1)
		}
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to access %s: %w", path, err)
	}

	if err := config.Default().Write(path); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("Wrote configuration to %s", pathStyle.Render(path)))
	return nil
}
