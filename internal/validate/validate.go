// Package validate checks the sitetools configuration and navigation map
// before a build runs.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"git.home.luguber.info/inful/sitetools/internal/config"
	sterrors "git.home.luguber.info/inful/sitetools/internal/errors"
	"git.home.luguber.info/inful/sitetools/internal/navigation"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Config validates the configuration struct against its validate tags.
func Config(cfg *config.Config) error {
	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
		}
		return sterrors.Newf(sterrors.CategoryValidation, sterrors.SeverityFatal,
			"invalid configuration: %s", strings.Join(msgs, "; "))
	}
	return sterrors.Wrap(err, sterrors.CategoryValidation, sterrors.SeverityFatal, "invalid configuration")
}

// NavReport summarizes a parsed navigation map.
type NavReport struct {
	Pages  int
	Groups int
	Tracks int
	Depth  int
}

// NavMap parses the navigation map in check-only mode and reports its shape.
// Structure errors from the loader propagate unchanged.
func NavMap(path string) (*NavReport, error) {
	tree, err := navigation.Load(path)
	if err != nil {
		return nil, err
	}

	report := &NavReport{}
	countSequence(tree, 1, report)
	return report, nil
}

func countSequence(nodes []navigation.Node, depth int, report *NavReport) {
	if depth > report.Depth && len(nodes) > 0 {
		report.Depth = depth
	}
	for _, n := range nodes {
		switch n := n.(type) {
		case navigation.Leaf:
			report.Pages++
		case navigation.GroupSet:
			report.Groups++
			for _, t := range n.Tracks {
				report.Tracks++
				countSequence(t.Children, depth+1, report)
			}
		}
	}
}
