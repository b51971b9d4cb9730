package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitetools/internal/navigation"
)

// NextCmd implements the 'next' command: it resolves which page(s) follow the
// given page in the navigation map and prints a flat identifier -> URL mapping.
type NextCmd struct {
	Page   string `arg:"" optional:"" help:"Current page path relative to the content root (omit to resolve the first page)"`
	Map    string `short:"m" help:"Navigation map file (overrides config)"`
	Format string `short:"f" default:"yaml" enum:"yaml,json" help:"Output format (yaml or json)"`
}

// Run executes the next command.
func (n *NextCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config, n.Map != "")
	if err != nil {
		return err
	}

	mapPath := cfg.NavMap
	if n.Map != "" {
		mapPath = n.Map
	}

	tree, err := navigation.Load(mapPath)
	if err != nil {
		return err
	}

	path := navigation.StripSharedTrack(splitPagePath(n.Page), cfg.Next.SharedTrack)
	res := navigation.ResolveNext(tree, path)
	slog.Debug("Resolved next pages",
		"page", n.Page,
		"outcome", res.Outcome.String(),
		"candidates", len(res.Candidates))

	links, err := navigation.FormatNext(res, navigation.FormatOptions{
		IDPrefix:     cfg.Next.IDPrefix,
		URLPrefix:    cfg.Next.URLPrefix,
		DefaultTrack: cfg.Next.DefaultTrack,
	})
	if err != nil {
		return err
	}

	return emit(links, n.Format)
}

func emit(links map[string]string, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(links, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	default:
		out, err := yaml.Marshal(links)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, string(out))
		return nil
	}
}
