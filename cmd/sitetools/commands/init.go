package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/sitetools/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

// Run executes the init command.
func (i *InitCmd) Run(_ *Global, root *CLI) error {
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	slog.Info("Configuration initialized", "path", root.Config)
	return nil
}
