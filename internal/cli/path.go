package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/re-cinq/topictree/internal/config"
	"github.com/re-cinq/topictree/internal/fileutil"
	"github.com/re-cinq/topictree/internal/topics"
	"github.com/spf13/cobra"
)

var pathAbs bool

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of a topic, its metadata files, courses or exercises",
	Long: `Print the path of an entry in the topics content tree.

Paths are relative to the content root and always use '/'. With --abs the
path is joined onto the content root configured in topictree.yaml.

A topic is either a name ("docker") or a subtopic reference ("aws/ec2").
Only the first '/' separates parent from child; "a/b/c" is the subtopic
"b/c" of "a".`,
}

// pathSubcommand describes one "path" leaf command.
type pathSubcommand struct {
	use      string
	short    string
	levelArg int // index of the level argument, -1 if none
	build    func(args []string) string
}

var pathSubcommands = []pathSubcommand{
	{
		use:      "topic <topic>",
		short:    "Print the directory of a topic",
		levelArg: -1,
		build:    func(args []string) string { return topics.TopicPath(args[0]) },
	},
	{
		use:      "progress <topic>",
		short:    "Print the path of a topic's progress.yaml",
		levelArg: -1,
		build:    func(args []string) string { return topics.ProgressPath(args[0]) },
	},
	{
		use:      "rewards <topic>",
		short:    "Print the path of a topic's rewards.yaml",
		levelArg: -1,
		build:    func(args []string) string { return topics.RewardsPath(args[0]) },
	},
	{
		use:      "course <topic> <level> <course-id>",
		short:    "Print the path of a course markdown file",
		levelArg: 1,
		build:    func(args []string) string { return topics.CoursePath(args[0], args[1], args[2]) },
	},
	{
		use:      "exercise <topic> <level> <course-id> <exercise-id>",
		short:    "Print the path of an exercise directory",
		levelArg: 1,
		build: func(args []string) string {
			return topics.ExercisePath(args[0], args[1], args[2], args[3])
		},
	},
}

func (s pathSubcommand) command() *cobra.Command {
	return &cobra.Command{
		Use:   s.use,
		Short: s.short,
		Args:  cobra.ExactArgs(argCount(s.use)),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := s.build(args)

			if pathAbs {
				cfgPath := resolveConfigPath(cmd)
				cfg, err := loadAndValidateConfig(cfgPath)
				if err != nil {
					return err
				}
				s.checkLevel(cfg, args)
				p = fileutil.Resolve(fileutil.ContentRoot(cfgPath, cfg.Root), p)
			} else if s.levelArg >= 0 {
				// Relative paths never depend on the config.
				cfg, err := config.LoadOrDefault(resolveConfigPath(cmd))
				if err != nil {
					slog.Warn("skipping level check", "err", err)
				} else {
					s.checkLevel(cfg, args)
				}
			}

			slog.Debug("resolved path", "path", p)
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

// checkLevel warns when the level argument is not a configured level.
func (s pathSubcommand) checkLevel(cfg *config.Config, args []string) {
	if s.levelArg < 0 {
		return
	}
	if level := args[s.levelArg]; !cfg.HasLevel(level) {
		slog.Warn("unknown level", "level_name", level, "known", cfg.Levels)
	}
}

// argCount counts the <placeholders> in a Use string.
func argCount(use string) int {
	return strings.Count(use, "<")
}

func init() {
	pathCmd.PersistentFlags().BoolVar(&pathAbs, "abs", false, "join the path onto the configured content root")
	for _, s := range pathSubcommands {
		pathCmd.AddCommand(s.command())
	}
	rootCmd.AddCommand(pathCmd)
}
