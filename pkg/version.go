package bumpver

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// BumpKind selects which component of a version to increment.
type BumpKind string

const (
	BumpPatch BumpKind = "patch"
	BumpMinor BumpKind = "minor"
	BumpMajor BumpKind = "major"
)

// bumpKinds is the accepted set, in the order shown to the operator.
var bumpKinds = []BumpKind{BumpPatch, BumpMinor, BumpMajor}

// InvalidBumpKindError reports a bump argument outside the accepted set.
type InvalidBumpKindError struct {
	Kind string
}

func (e *InvalidBumpKindError) Error() string {
	accepted := make([]string, len(bumpKinds))
	for i, k := range bumpKinds {
		accepted[i] = string(k)
	}
	return fmt.Sprintf("invalid bump kind %q (accepted: %s)", e.Kind, strings.Join(accepted, ", "))
}

// ParseBumpKind validates a bump argument. The empty string defaults to patch.
func ParseBumpKind(s string) (BumpKind, error) {
	switch BumpKind(s) {
	case "":
		return BumpPatch, nil
	case BumpPatch, BumpMinor, BumpMajor:
		return BumpKind(s), nil
	}
	return "", &InvalidBumpKindError{Kind: s}
}

// MalformedVersionError reports version store content that does not parse as
// a major.minor.patch integer triple.
type MalformedVersionError struct {
	Input  string
	Reason string
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version %q: %s", e.Input, e.Reason)
}

// Version is a semantic version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses "major.minor.patch" into a Version. Surrounding
// whitespace is stripped first. Anything other than three dot-separated
// non-negative integers is a MalformedVersionError.
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if !semver.IsValid("v" + trimmed) {
		return Version{}, &MalformedVersionError{Input: trimmed, Reason: "not a valid semantic version"}
	}
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return Version{}, &MalformedVersionError{
			Input:  trimmed,
			Reason: fmt.Sprintf("expected 3 components, got %d", len(parts)),
		}
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, &MalformedVersionError{
				Input:  trimmed,
				Reason: fmt.Sprintf("component %q is not a non-negative integer", p),
			}
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String renders the canonical "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// TagName is the git tag name for the version, "v" plus the canonical form.
func (v Version) TagName() string {
	return "v" + v.String()
}

// Bump derives the next version for the given kind. The receiver is not
// modified.
func (v Version) Bump(kind BumpKind) (Version, error) {
	switch kind {
	case BumpMajor:
		return Version{Major: v.Major + 1}, nil
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	}
	return Version{}, &InvalidBumpKindError{Kind: string(kind)}
}
