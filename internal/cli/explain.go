package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const explainText = `topictree — paths of the topics content tree

PURPOSE
  topictree prints where each piece of learning content lives: topics,
  subtopics, their progress and rewards files, course markdown files and
  exercise directories. Every tool that reads or writes the content tree
  should use these paths instead of building its own.

LAYOUT
  topics/<topic>/                                   top-level topic
  topics/<parent>/subtopics/<child>/                subtopic "parent/child"
  <topic dir>/progress.yaml                         learner progress
  <topic dir>/rewards.yaml                          earned rewards
  <topic dir>/courses/<level>/<course-id>.md        course content
  <topic dir>/exercices/<level>/<course-id>/<id>/   exercise directory

  Note the spellings: "courses" but "exercices". Both are part of the
  on-disk format and must not be changed.

TOPIC REFERENCES
  - "docker" is a top-level topic.
  - "aws/ec2" is the subtopic "ec2" of "aws".
  - Only the first '/' separates parent from child: "a/b/c" is the
    subtopic "b/c" of "a" (topics/a/subtopics/b/c).
  - Identifiers are not validated; any string produces a path.

COMMANDS
  path topic <topic>                                 topic directory
  path progress <topic>                              progress.yaml
  path rewards <topic>                               rewards.yaml
  path course <topic> <level> <course-id>            course markdown file
  path exercise <topic> <level> <course-id> <id>     exercise directory
              Paths are relative to the content root. --abs joins them onto
              the root from topictree.yaml. course and exercise warn when the
              level is not listed in the config.
  init        Write a default topictree.yaml (never overwrites) and create
              the topics/ directory.
  validate    Validate topictree.yaml and print specific errors, or "valid".
  schema      Output the JSON Schema of topictree.yaml.
  explain     Print this reference (what you are reading now).
  version     Print the version.

CONFIG FORMAT (topictree.yaml)
  Commands look for topictree.yaml in the current directory and its
  parents. -p/--path selects a different file. A missing file means
  defaults.

  root: .                # directory holding topics/ (relative to this file)
  levels:                # known difficulty levels
    - starter
    - beginner
    - advanced
    - expert`

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print agent-friendly reference for topictree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), explainText)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
