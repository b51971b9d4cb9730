package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitetools/internal/config"
	"git.home.luguber.info/inful/sitetools/internal/navigation"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
	RunID  string
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"sitetools.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Next     NextCmd     `cmd:"" help:"Resolve the next page(s) for a given page in the navigation map"`
	Render   RenderCmd   `cmd:"" help:"Render Markdown content files into HTML pages"`
	Inject   InjectCmd   `cmd:"" help:"Re-inject referenced file contents into marked regions"`
	Merge    MergeCmd    `cmd:"" help:"Deep-merge YAML data files"`
	Validate ValidateCmd `cmd:"" help:"Validate configuration and navigation map"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.RunID = uuid.NewString()
	g.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	slog.Debug("CLI initialized", "run_id", g.RunID)
	return nil
}

// loadConfig loads the configuration file; when it is absent and the caller
// can proceed on flags alone, allowMissing yields a defaulted config instead.
func loadConfig(path string, allowMissing bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if allowMissing {
			if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				return config.Default(), nil
			}
		}
		return nil, err
	}
	return cfg, nil
}

// splitPagePath turns a file-system-relative page path into navigation path
// components. An empty page means "before the first page".
func splitPagePath(page string) navigation.Path {
	page = strings.Trim(strings.ReplaceAll(page, "\\", "/"), "/")
	if page == "" {
		return nil
	}
	return navigation.Path(strings.Split(page, "/"))
}
