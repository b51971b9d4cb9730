package commands

import (
	"errors"
	"log/slog"

	"git.home.luguber.info/inful/sitetools/internal/inject"
)

// InjectCmd implements the 'inject' command.
type InjectCmd struct {
	Targets []string `arg:"" optional:"" help:"Target files (defaults to the configured inject targets)"`
}

// Run executes the inject command.
func (i *InjectCmd) Run(_ *Global, root *CLI) error {
	targets := i.Targets
	if len(targets) == 0 {
		cfg, err := loadConfig(root.Config, false)
		if err != nil {
			return err
		}
		targets = cfg.Inject.Targets
	}
	if len(targets) == 0 {
		return errors.New("no inject targets given (pass files or set inject.targets in the config)")
	}

	rewritten := 0
	for _, target := range targets {
		changed, err := inject.File(target)
		if err != nil {
			return err
		}
		if changed {
			rewritten++
			slog.Info("Injected", "target", target)
		} else {
			slog.Debug("Up to date", "target", target)
		}
	}
	slog.Info("Injection completed", "targets", len(targets), "rewritten", rewritten)
	return nil
}
