package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/sitetools/internal/merge"
)

// MergeCmd implements the 'merge' command.
type MergeCmd struct {
	Files  []string `arg:"" optional:"" help:"Data files to merge, later files win (defaults to the configured data files)"`
	Output string   `short:"o" help:"Write merged data to this file instead of stdout (overrides config)"`
}

// Run executes the merge command.
func (m *MergeCmd) Run(_ *Global, root *CLI) error {
	files := m.Files
	output := m.Output
	if len(files) == 0 || output == "" {
		cfg, err := loadConfig(root.Config, len(files) > 0)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			files = cfg.Data.Files
		}
		if output == "" {
			output = cfg.Data.Output
		}
	}
	if len(files) == 0 {
		return errors.New("no data files given (pass files or set data.files in the config)")
	}

	merged, err := merge.Files(files)
	if err != nil {
		return err
	}
	out, err := merge.Encode(merged)
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Fprint(os.Stdout, string(out))
		return nil
	}
	// #nosec G306 -- merged site data is not sensitive
	if err := os.WriteFile(output, out, 0644); err != nil {
		return err
	}
	slog.Info("Merged data written", "files", len(files), "output", output)
	return nil
}
