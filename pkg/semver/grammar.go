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

import "strings"

// The identifier grammars below are implemented as explicit byte scanners
// rather than regular expressions. The specification alphabet is ASCII only:
// digits, letters, and the hyphen. Validation is anchored, all-or-nothing
// over the whole input.

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentifierChar(c byte) bool {
	return isDigit(c) || isLetter(c) || c == '-'
}

// validNumericIdentifier reports whether s is "0" or a run of digits with no
// leading zero. This is the grammar of the major, minor, and patch groups.
func validNumericIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	if s[0] == '0' {
		return len(s) == 1
	}
	return true
}

// validPreReleaseIdentifier reports whether s is a single pre-release
// identifier. Valid forms are: a digit-only identifier with no leading zero
// (or exactly "0"), or a digit- or letter-led identifier over the
// [0-9A-Za-z-] alphabet containing at least one non-digit. A leading hyphen
// is not accepted.
func validPreReleaseIdentifier(s string) bool {
	if s == "" {
		return false
	}
	digitsOnly := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isIdentifierChar(c) {
			return false
		}
		if !isDigit(c) {
			digitsOnly = false
		}
	}
	if digitsOnly {
		// Numeric identifier: no leading zero unless the identifier is "0".
		return len(s) == 1 || s[0] != '0'
	}
	return s[0] != '-'
}

// validBuildMetadataIdentifier reports whether s is a single build metadata
// identifier: one or more characters from the [0-9A-Za-z-] alphabet. Unlike
// pre-release identifiers, leading zeros and leading hyphens are allowed.
func validBuildMetadataIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentifierChar(s[i]) {
			return false
		}
	}
	return true
}

// validPreRelease reports whether s is a full pre-release field: one or more
// pre-release identifiers joined by dots. The empty string is rejected;
// callers represent "no pre-release" as an empty field, not by calling this.
func validPreRelease(s string) bool {
	for _, id := range strings.Split(s, ".") {
		if !validPreReleaseIdentifier(id) {
			return false
		}
	}
	return true
}

// validBuildMetadata reports whether s is a full build metadata field: one or
// more build metadata identifiers joined by dots.
func validBuildMetadata(s string) bool {
	for _, id := range strings.Split(s, ".") {
		if !validBuildMetadataIdentifier(id) {
			return false
		}
	}
	return true
}
