package models

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/mod/semver"
)

// ProjectInfo is the fixed metadata record describing the project.
type ProjectInfo struct {
	// Name is the stable project identifier
	Name string `json:"name" yaml:"name"`

	// Version is the semantic version of the project (without 'v' prefix)
	Version string `json:"version" yaml:"version"`

	// Description is a human-readable summary
	Description string `json:"description" yaml:"description"`

	// PythonVersion is the supported interpreter range, e.g. "3.12+"
	PythonVersion string `json:"python_version" yaml:"python_version"`
}

// Field is a single key/value pair of a ProjectInfo.
type Field struct {
	Key   string
	Value string
}

// Field keys as they appear in serialized output.
const (
	FieldName          = "name"
	FieldVersion       = "version"
	FieldDescription   = "description"
	FieldPythonVersion = "python_version"
)

var pythonMarkerRegex = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// Fields returns the record as ordered key/value pairs.
func (p ProjectInfo) Fields() []Field {
	return []Field{
		{Key: FieldName, Value: p.Name},
		{Key: FieldVersion, Value: p.Version},
		{Key: FieldDescription, Value: p.Description},
		{Key: FieldPythonVersion, Value: p.PythonVersion},
	}
}

// Validate checks that every field is present and well-formed.
func (p ProjectInfo) Validate() error {
	for _, f := range p.Fields() {
		if f.Value == "" {
			return fmt.Errorf("field %q must not be empty", f.Key)
		}
	}

	// Shorthands ("1.0") and build metadata are valid to x/mod but not
	// canonical; ParseVersion must accept whatever passes here.
	if semver.Canonical("v"+p.Version) != "v"+p.Version {
		return fmt.Errorf("field %q is not a semantic version: %s", FieldVersion, p.Version)
	}
	if _, err := ParseVersion(p.Version); err != nil {
		return fmt.Errorf("field %q is not a semantic version: %w", FieldVersion, err)
	}

	if _, err := p.MinimumPython(); err != nil {
		return err
	}

	return nil
}

// MinimumPython parses the python_version marker into a Version.
// "3.12+" yields 3.12.0.
func (p ProjectInfo) MinimumPython() (*Version, error) {
	m := pythonMarkerRegex.FindStringSubmatch(p.PythonVersion)
	if m == nil {
		return nil, fmt.Errorf("field %q has no version marker: %q", FieldPythonVersion, p.PythonVersion)
	}

	nums := make([]int, 3)
	for i, part := range m[1:] {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("field %q has an invalid version marker %q: %w", FieldPythonVersion, p.PythonVersion, err)
		}
		nums[i] = n
	}

	return &Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}
