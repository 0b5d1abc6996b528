package release

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// IsNewer reports whether candidate is strictly newer than current. Both
// accept an optional leading v, as release tags usually carry one.
func IsNewer(current, candidate string) (bool, error) {
	cur, err := semver.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("invalid current version %q: %w", current, err)
	}

	cand, err := semver.NewVersion(candidate)
	if err != nil {
		return false, fmt.Errorf("invalid candidate version %q: %w", candidate, err)
	}

	return cand.GreaterThan(cur), nil
}
