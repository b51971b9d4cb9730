package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/sitetools/internal/validate"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

// Run executes the validate command.
func (v *ValidateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config, false)
	if err != nil {
		return err
	}
	if err := validate.Config(cfg); err != nil {
		return err
	}
	slog.Info("Configuration is valid", "path", root.Config)

	report, err := validate.NavMap(cfg.NavMap)
	if err != nil {
		return err
	}
	slog.Info("Navigation map is valid",
		"path", cfg.NavMap,
		"pages", report.Pages,
		"groups", report.Groups,
		"tracks", report.Tracks,
		"depth", report.Depth)
	return nil
}
