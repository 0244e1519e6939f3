// Package semver implements the strict three-part version scheme used by
// the release pipeline.
//
// Versions are dotted triples of non-negative integers
// ("major.minor.patch"). Pre-release tags, build metadata, and partial
// versions are rejected: the release flow only ever increments the patch
// component, so anything it cannot round-trip exactly is treated as a
// malformed manifest rather than silently normalized.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed major.minor.patch triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a strict "major.minor.patch" string into a Version.
// Exactly three dot-separated components are required and every component
// must be a non-negative decimal integer. Returns an error describing the
// offending component otherwise.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("version %q must have exactly three components (major.minor.patch), got %d", s, len(parts))
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := parseComponent(part)
		if err != nil {
			return Version{}, fmt.Errorf("version %q: %w", s, err)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// parseComponent parses one version component as a non-negative decimal
// integer. strconv.Atoi alone would accept signs, so digits are checked
// explicitly.
func parseComponent(part string) (int, error) {
	if part == "" {
		return 0, fmt.Errorf("empty component")
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("component %q is not a non-negative integer", part)
		}
	}
	n, err := strconv.Atoi(part)
	if err != nil {
		return 0, fmt.Errorf("component %q is not a valid integer: %w", part, err)
	}
	return n, nil
}

// BumpPatch returns a copy of v with the patch component incremented by one.
// Major and minor pass through unchanged. Each call increments by exactly
// one, so bumping is deliberately not idempotent.
func (v Version) BumpPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// String serializes the version back to its "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
