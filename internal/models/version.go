package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Version represents a semantic version
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string // e.g., "rc0", "beta.1"
}

// ParseVersion parses a version string (e.g., "1.2.3", "v1.2.3", "1.2.3-rc0")
func ParseVersion(s string) (*Version, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "v")

	if s == "" {
		return nil, fmt.Errorf("empty version string")
	}

	var prerelease string
	if idx := strings.Index(s, "-"); idx != -1 {
		prerelease = s[idx+1:]
		s = s[:idx]
		if prerelease == "" {
			return nil, fmt.Errorf("invalid version format: %s- (empty prerelease)", s)
		}
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid version format: %s (expected major.minor.patch)", s)
	}

	nums := make([]int, 3)
	for i, label := range []string{"major", "minor", "patch"} {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid %s version: %s", label, parts[i])
		}
		nums[i] = n
	}

	return &Version{
		Major:      nums[0],
		Minor:      nums[1],
		Patch:      nums[2],
		Prerelease: prerelease,
	}, nil
}

// String returns the version as a string without 'v' prefix
func (v *Version) String() string {
	if v.Prerelease != "" {
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, v.Prerelease)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Tag returns the version as a tag string with 'v' prefix
func (v *Version) Tag() string {
	return "v" + v.String()
}

// Compare compares two versions
// Returns -1 if v < other, 0 if v == other, 1 if v > other
// Prerelease versions are ordered before release versions (e.g., 1.2.3-rc0 < 1.2.3)
func (v *Version) Compare(other *Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}

	switch {
	case v.Prerelease == other.Prerelease:
		return 0
	case v.Prerelease == "":
		return 1 // Release > prerelease
	case other.Prerelease == "":
		return -1
	case v.Prerelease < other.Prerelease:
		return -1
	default:
		return 1
	}
}

// IsPrerelease returns true if this version has a prerelease suffix
func (v *Version) IsPrerelease() bool {
	return v.Prerelease != ""
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
