package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/re-cinq/topictree/internal/config"
	"github.com/re-cinq/topictree/internal/fileutil"
	"github.com/re-cinq/topictree/internal/topics"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default topictree.yaml and create the topics directory",
	Long: `Initialize a content tree in the target directory (defaults to the
current directory).

This command:
  - Writes topictree.yaml with the default levels, unless one already exists
  - Creates the topics/ directory under the content root

Safe to re-run: an existing topictree.yaml is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		absDir, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}
		if err := fileutil.EnsureDir(absDir); err != nil {
			return fmt.Errorf("creating %s: %w", absDir, err)
		}

		out := cmd.OutOrStdout()
		cfgPath := filepath.Join(absDir, config.DefaultFile)

		cfg, err := initConfig(cfgPath)
		if err != nil {
			return err
		}
		if cfg == nil {
			fmt.Fprintf(out, "  exists %s\n", config.DefaultFile)
			if cfg, err = loadAndValidateConfig(cfgPath); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "  config %s\n", config.DefaultFile)
		}

		topicsDir := fileutil.Resolve(fileutil.ContentRoot(cfgPath, cfg.Root), topics.BasePath)
		if err := fileutil.EnsureDir(topicsDir); err != nil {
			return fmt.Errorf("creating topics directory: %w", err)
		}
		rel, err := filepath.Rel(absDir, topicsDir)
		if err != nil {
			rel = topicsDir
		}
		fmt.Fprintf(out, "  dir    %s\n", filepath.ToSlash(rel))

		fmt.Fprintln(out, "\nDone.")
		return nil
	},
}

// initConfig writes the default config to path. It returns nil, nil when
// the file already exists.
func initConfig(path string) (*config.Config, error) {
	if fileutil.Exists(path) {
		return nil, nil
	}

	cfg := config.Default()
	data, err := config.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return cfg, nil
}
