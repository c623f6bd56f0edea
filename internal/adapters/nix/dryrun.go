package nix

import (
	"strings"

	"go.trai.ch/nixbisect/internal/core/domain"
	"go.trai.ch/zerr"
)

const storePrefix = "/nix/store"

// ParseDryRun parses the output of `nix-store --realize --dry-run`.
//
// Store paths are listed under "will be built" and "will be fetched" headers.
// Any other non-blank line, or a path before the first header, is an error:
// skipping it could hide a unit that needs building.
func ParseDryRun(output string) (domain.DryRunPlan, error) {
	var plan domain.DryRunPlan
	var current *[]domain.UnitID

	for n, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue
		case strings.Contains(line, "will be fetched"):
			current = &plan.ToFetch
		case strings.Contains(line, "will be built"):
			current = &plan.ToBuild
		case strings.HasPrefix(line, storePrefix) && current != nil:
			*current = append(*current, domain.UnitID(line))
		default:
			err := zerr.With(domain.ErrDryRunParseFailed, "line", line)
			return domain.DryRunPlan{}, zerr.With(err, "line_number", n+1)
		}
	}

	return plan, nil
}
