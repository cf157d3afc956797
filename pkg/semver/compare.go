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
	"hash/fnv"
	"sort"
	"strings"
)

// Compare returns an integer comparing two versions by precedence:
// negative if a < b, 0 if a == b, positive if a > b.
//
// Major, minor, and patch are compared numerically. If all three are equal,
// a version with a pre-release sorts below the same version without one.
// Two pre-release fields are compared identifier by identifier: all-digit
// identifiers numerically, others byte-wise in ASCII order, with numeric
// identifiers always below alphanumeric ones. If all shared identifiers are
// equal, the version with more identifiers has higher precedence. Build
// metadata is ignored entirely.
//
// Compare establishes a total order and can be passed directly to generic
// sorting utilities such as slices.SortFunc.
func Compare(a, b Version) int {
	if c := compareInt(a.major, b.major); c != 0 {
		return c
	}
	if c := compareInt(a.minor, b.minor); c != 0 {
		return c
	}
	if c := compareInt(a.patch, b.patch); c != 0 {
		return c
	}

	switch {
	case a.preRelease == "" && b.preRelease == "":
		return 0
	case a.preRelease == "":
		// a is the release, b the pre-release
		return 1
	case b.preRelease == "":
		return -1
	}
	return comparePreRelease(a.PreReleaseIdentifiers(), b.PreReleaseIdentifiers())
}

// Compare returns an integer comparing v to other by precedence.
// See the package-level Compare for the ordering rules.
func (v Version) Compare(other Version) int {
	return Compare(v, other)
}

// Equal reports whether a and b have equal precedence. Two versions
// differing only in build metadata are equal.
func Equal(a, b Version) bool {
	return Compare(a, b) == 0
}

// Equal reports whether v and other have equal precedence.
func (v Version) Equal(other Version) bool {
	return Compare(v, other) == 0
}

// Hash returns a hash computed from major, minor, patch, and the raw
// pre-release field. Build metadata is excluded, so versions that are Equal
// always hash identically. The result is stable within a process.
func (v Version) Hash() uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d.%d.%d-%s", v.major, v.minor, v.patch, v.preRelease)
	return h.Sum64()
}

// Sort sorts versions in place by ascending precedence.
func Sort(versions []Version) {
	sort.Slice(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) < 0
	})
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

func comparePreRelease(a, b []string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := comparePreReleaseIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}
	// All shared identifiers are equal; the larger set wins.
	return compareInt(len(a), len(b))
}

func comparePreReleaseIdentifier(a, b string) int {
	aNum := isNumericIdentifier(a)
	bNum := isNumericIdentifier(b)
	switch {
	case aNum && bNum:
		return compareNumericIdentifier(a, b)
	case aNum:
		// Numeric identifiers always have lower precedence.
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func isNumericIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

// compareNumericIdentifier compares two all-digit identifiers at arbitrary
// precision. The grammar forbids leading zeros, so the longer run of digits
// is the larger number and equal-length runs compare byte-wise.
func compareNumericIdentifier(a, b string) int {
	if c := compareInt(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
