package config

import (
	"fmt"
	"strings"
)

// Validate checks a loaded Config for semantic errors beyond what Load catches.
// Returns a list of human/agent-readable error strings, one per issue.
// Load fills in an empty root, so the root check only fires for a Config
// built in code.
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Root == "" {
		errs = append(errs, "root: required field is empty")
	}

	if len(cfg.Levels) == 0 {
		errs = append(errs, "levels: at least one level is required")
	}

	seen := make(map[string]bool)
	for i, l := range cfg.Levels {
		switch {
		case l == "":
			errs = append(errs, fmt.Sprintf("levels[%d]: required field is empty", i))
		case strings.Contains(l, "/"):
			errs = append(errs, fmt.Sprintf("levels[%d]: level %q must not contain '/'", i, l))
		case seen[l]:
			errs = append(errs, fmt.Sprintf("levels[%d]: duplicate level %q", i, l))
		default:
			seen[l] = true
		}
	}

	return errs
}
