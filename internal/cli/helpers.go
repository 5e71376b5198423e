package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/re-cinq/topictree/internal/config"
	"github.com/re-cinq/topictree/internal/fileutil"
	"github.com/spf13/cobra"
)

// resolveConfigPath returns the absolute path of the config file to use. An
// explicit --path wins; otherwise topictree.yaml is looked up from the working
// directory upwards, falling back to the default name in the working directory.
func resolveConfigPath(cmd *cobra.Command) string {
	path := configPath
	if !cmd.Flags().Changed("path") {
		if cwd, err := os.Getwd(); err == nil {
			if found := findFileUp(cwd, []string{config.DefaultFile}); found != "" {
				path = found
			}
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// loadAndValidateConfig loads the config (or defaults when it is missing) and
// validates it, logging each validation problem. Load errors are returned
// as is.
func loadAndValidateConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}

	errs := config.Validate(cfg)
	if len(errs) > 0 {
		for _, e := range errs {
			fileutil.LogError("%s", e)
		}
		return nil, fmt.Errorf("%d validation error(s)", len(errs))
	}

	return cfg, nil
}

// walkUpUntil walks up the directory tree from dir, calling check on each directory.
// Returns the first directory where check returns true, or "" if none found.
func walkUpUntil(dir string, check func(string) bool) string {
	for {
		if check(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// findFileUp walks up from dir looking for any of the given filenames.
// Returns the full path to the first file found, or "" if none found.
func findFileUp(dir string, filenames []string) string {
	foundDir := walkUpUntil(dir, func(d string) bool {
		for _, name := range filenames {
			if fileutil.Exists(filepath.Join(d, name)) {
				return true
			}
		}
		return false
	})
	if foundDir == "" {
		return ""
	}
	for _, name := range filenames {
		p := filepath.Join(foundDir, name)
		if fileutil.Exists(p) {
			return p
		}
	}
	return ""
}
