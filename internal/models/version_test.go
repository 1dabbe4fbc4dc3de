package models

import (
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected *Version
	}{
		{"1.0.0", &Version{1, 0, 0, ""}},
		{"v1.2.3", &Version{1, 2, 3, ""}},
		{" 0.0.0 ", &Version{0, 0, 0, ""}},
		{"1.2.3-rc0", &Version{1, 2, 3, "rc0"}},
		{"v2.0.0-beta.1", &Version{2, 0, 0, "beta.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseVersion(tt.input)
			if err != nil {
				t.Fatalf("ParseVersion(%q) error: %v", tt.input, err)
			}

			if *result != *tt.expected {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, input := range []string{"", "v", "1.2", "1.2.3.4", "a.b.c", "1.-2.3", "1.2.3-", "v1.0.0-"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseVersion(input); err == nil {
				t.Errorf("ParseVersion(%q) expected error", input)
			}
		})
	}
}

func TestVersion_StringAndTag(t *testing.T) {
	tests := []struct {
		version *Version
		str     string
		tag     string
	}{
		{&Version{1, 0, 0, ""}, "1.0.0", "v1.0.0"},
		{&Version{1, 2, 3, "rc0"}, "1.2.3-rc0", "v1.2.3-rc0"},
		{&Version{2, 0, 0, "beta.1"}, "2.0.0-beta.1", "v2.0.0-beta.1"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.version.String(); got != tt.str {
				t.Errorf("Version.String() = %q, want %q", got, tt.str)
			}
			if got := tt.version.Tag(); got != tt.tag {
				t.Errorf("Version.Tag() = %q, want %q", got, tt.tag)
			}
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		name     string
		v1       *Version
		v2       *Version
		expected int
	}{
		{"same version", &Version{1, 0, 0, ""}, &Version{1, 0, 0, ""}, 0},
		{"major wins", &Version{2, 0, 0, ""}, &Version{1, 9, 9, ""}, 1},
		{"minor wins", &Version{3, 11, 0, ""}, &Version{3, 12, 0, ""}, -1},
		{"patch wins", &Version{3, 12, 1, ""}, &Version{3, 12, 0, ""}, 1},

		// Prerelease < release
		{"rc0 < release", &Version{1, 2, 3, "rc0"}, &Version{1, 2, 3, ""}, -1},
		{"release > rc0", &Version{1, 2, 3, ""}, &Version{1, 2, 3, "rc0"}, 1},
		{"rc0 < rc1", &Version{1, 2, 3, "rc0"}, &Version{1, 2, 3, "rc1"}, -1},
		{"rc1 > rc0", &Version{1, 2, 3, "rc1"}, &Version{1, 2, 3, "rc0"}, 1},

		// Base version comparison takes precedence
		{"1.2.3 < 1.2.4-rc0", &Version{1, 2, 3, ""}, &Version{1, 2, 4, "rc0"}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Compare(tt.v2)
			if result != tt.expected {
				t.Errorf("%s.Compare(%s) = %d, want %d",
					tt.v1.String(), tt.v2.String(), result, tt.expected)
			}
		})
	}
}

func TestVersion_IsPrerelease(t *testing.T) {
	tests := []struct {
		name     string
		version  *Version
		expected bool
	}{
		{"with rc", &Version{1, 2, 3, "rc0"}, true},
		{"with beta", &Version{1, 2, 3, "beta.1"}, true},
		{"without prerelease", &Version{1, 2, 3, ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.version.IsPrerelease()
			if result != tt.expected {
				t.Errorf("IsPrerelease() = %v, want %v", result, tt.expected)
			}
		})
	}
}
