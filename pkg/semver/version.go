// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Compliance is the version of the Semantic Versioning specification this
// package implements. It is initialized once and never modified.
var Compliance = Version{major: 2, minor: 0, patch: 0}

// Version is an immutable semantic version. All fields are unexported;
// instances are constructed only through New, NewVersion, Parse, or
// MustParse, so a Version in hand is always grammar-conformant.
//
// Version has value semantics and is safe for concurrent use. Note that the
// == operator also compares build metadata; use Equal for equality under the
// specification's precedence rules.
type Version struct {
	major         int
	minor         int
	patch         int
	preRelease    string
	buildMetadata string
}

// New creates a Version from major, minor, and patch with no pre-release and
// no build metadata. No value may be negative and at least one must be
// greater than zero.
func New(major, minor, patch int) (Version, error) {
	if err := checkComponents(major, minor, patch); err != nil {
		return Version{}, err
	}
	return Version{major: major, minor: minor, patch: patch}, nil
}

// NewVersion creates a Version from all five components. An empty preRelease
// or buildMetadata means the version has no such field; non-empty values must
// match their respective grammars in full.
func NewVersion(major, minor, patch int, preRelease, buildMetadata string) (Version, error) {
	if err := checkComponents(major, minor, patch); err != nil {
		return Version{}, err
	}
	if preRelease != "" && !validPreRelease(preRelease) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidPreRelease, preRelease)
	}
	if buildMetadata != "" && !validBuildMetadata(buildMetadata) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidBuildMetadata, buildMetadata)
	}
	return Version{
		major:         major,
		minor:         minor,
		patch:         patch,
		preRelease:    preRelease,
		buildMetadata: buildMetadata,
	}, nil
}

func checkComponents(major, minor, patch int) error {
	if major < 0 || minor < 0 || patch < 0 {
		return fmt.Errorf("%w: %d.%d.%d", ErrNegativeComponent, major, minor, patch)
	}
	if major == 0 && minor == 0 && patch == 0 {
		return ErrZeroVersion
	}
	return nil
}

// Parse parses s as a semantic version. The input must match the full
// grammar exactly: no "v" prefix, no surrounding whitespace, no leading
// zeros in the numeric core. The all-zero version "0.0.0" is rejected.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	// Single left-to-right pass: build metadata starts at the first '+',
	// a pre-release at the first '-' before it. Neither marker can occur
	// inside the numeric core, so the split is unambiguous.
	core := s
	var build string
	if i := strings.IndexByte(core, '+'); i >= 0 {
		core, build = core[:i], core[i+1:]
		if !validBuildMetadata(build) {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
	}
	var pre string
	if i := strings.IndexByte(core, '-'); i >= 0 {
		core, pre = core[:i], core[i+1:]
		if !validPreRelease(pre) {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
	}

	groups := strings.Split(core, ".")
	if len(groups) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	parts := make([]int, 3)
	for i, g := range groups {
		if !validNumericIdentifier(g) {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		n, err := strconv.Atoi(g)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		parts[i] = n
	}
	if err := checkComponents(parts[0], parts[1], parts[2]); err != nil {
		return Version{}, err
	}

	return Version{
		major:         parts[0],
		minor:         parts[1],
		patch:         parts[2],
		preRelease:    pre,
		buildMetadata: build,
	}, nil
}

// MustParse parses s and panics if it is not a valid semantic version.
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// Major returns the major version number.
func (v Version) Major() int {
	return v.major
}

// Minor returns the minor version number.
func (v Version) Minor() int {
	return v.minor
}

// Patch returns the patch version number.
func (v Version) Patch() int {
	return v.patch
}

// PreRelease returns the raw pre-release field, or the empty string if the
// version has none.
func (v Version) PreRelease() string {
	return v.preRelease
}

// BuildMetadata returns the raw build metadata field, or the empty string if
// the version has none.
func (v Version) BuildMetadata() string {
	return v.buildMetadata
}

// PreReleaseIdentifiers returns the dot-separated pre-release identifiers in
// order, or nil if the version has no pre-release. The slice is recomputed on
// every call; mutating it does not affect the Version.
func (v Version) PreReleaseIdentifiers() []string {
	if v.preRelease == "" {
		return nil
	}
	return strings.Split(v.preRelease, ".")
}

// BuildMetadataIdentifiers returns the dot-separated build metadata
// identifiers in order, or nil if the version has no build metadata. The
// slice is recomputed on every call; mutating it does not affect the Version.
func (v Version) BuildMetadataIdentifiers() []string {
	if v.buildMetadata == "" {
		return nil
	}
	return strings.Split(v.buildMetadata, ".")
}

// IsInitialDevelopment reports whether this version is still under initial
// development, i.e. its major number is zero.
func (v Version) IsInitialDevelopment() bool {
	return v.major == 0
}

// IsPreRelease reports whether this version has a pre-release field.
func (v Version) IsPreRelease() bool {
	return v.preRelease != ""
}

// String returns the canonical form "major.minor.patch", followed by
// "-preRelease" if present and "+buildMetadata" if present. The result
// always round-trips through Parse.
func (v Version) String() string {
	var b strings.Builder
	b.Grow(len(v.preRelease) + len(v.buildMetadata) + 16)
	b.WriteString(strconv.Itoa(v.major))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.minor))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.patch))
	if v.preRelease != "" {
		b.WriteByte('-')
		b.WriteString(v.preRelease)
	}
	if v.buildMetadata != "" {
		b.WriteByte('+')
		b.WriteString(v.buildMetadata)
	}
	return b.String()
}
