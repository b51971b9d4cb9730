// Package merge deep-merges YAML data files for site parameters.
package merge

import (
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	sterrors "git.home.luguber.info/inful/sitetools/internal/errors"
)

// Files deep-merges the given YAML files in order; values from later files
// override earlier ones, maps merge recursively.
func Files(paths []string) (map[string]any, error) {
	merged := map[string]any{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, sterrors.Wrap(err, sterrors.CategoryFileSystem, sterrors.SeverityFatal,
				"failed to read data file").WithContext("path", path)
		}

		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, sterrors.Wrap(err, sterrors.CategoryMerge, sterrors.SeverityFatal,
				"data file is not a YAML mapping").WithContext("path", path)
		}
		if doc == nil {
			continue
		}

		if err := mergo.Merge(&merged, doc, mergo.WithOverride); err != nil {
			return nil, sterrors.Wrap(err, sterrors.CategoryMerge, sterrors.SeverityFatal,
				"merge failed").WithContext("path", path)
		}
	}
	return merged, nil
}

// Encode writes merged data as YAML.
func Encode(data map[string]any) ([]byte, error) {
	out, err := yaml.Marshal(data)
	if err != nil {
		return nil, sterrors.Wrap(err, sterrors.CategoryMerge, sterrors.SeverityFatal, "failed to encode merged data")
	}
	return out, nil
}
