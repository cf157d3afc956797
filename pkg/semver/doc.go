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

// Package semver implements the full Semantic Versioning 2.0.0 specification
// (https://semver.org), providing an immutable version value with strict
// grammar validation, precedence comparison, and canonical formatting.
//
// # Overview
//
// A Version is an immutable aggregate of five fields: major, minor, and patch
// numbers, an optional pre-release string, and optional build metadata.
// Instances are obtained only through the validated factories New, NewVersion,
// and Parse; there is no way to construct an invalid Version. The zero
// Version is not a valid value and should not be used.
//
// Validation is strict pass/fail over the entire input. No normalization is
// performed: no "v" prefix stripping, no whitespace trimming, no case folding,
// no removal of leading zeros. A string either matches the specification
// grammar in full or it is rejected.
//
// # Usage
//
// Parse a version string:
//
//	v, err := semver.Parse("1.2.3-rc.1+build.17")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2.3-rc.1+build.17
//
// Create versions programmatically:
//
//	v, err := semver.New(1, 2, 3)
//	v, err = semver.NewVersion(1, 2, 3, "alpha.1", "sha.5114f85")
//
// Compare versions:
//
//	a := semver.MustParse("1.0.0-alpha")
//	b := semver.MustParse("1.0.0")
//	if a.Compare(b) < 0 {
//	    fmt.Println("pre-release sorts before the release")
//	}
//
// Sort a slice by precedence:
//
//	semver.Sort(versions)
//
// # Precedence
//
// Compare implements the precedence rules of the specification: major, minor,
// and patch are compared numerically; a version with a pre-release sorts below
// the same version without one; pre-release identifiers are compared pairwise,
// numerically for all-digit identifiers and byte-wise in ASCII order
// otherwise, with numeric identifiers always below alphanumeric ones. Build
// metadata never participates in precedence, equality, or hashing.
//
// Numeric pre-release identifiers are compared at arbitrary precision, so
// identifiers larger than the native integer range still order correctly.
//
// # Error Handling
//
// Failures are reported as one of two kinds, each backed by sentinel errors
// matchable with errors.Is:
//
//   - Invalid-argument errors (ErrEmptyVersion, ErrNegativeComponent,
//     ErrZeroVersion) indicate a caller bug: input that can never form a
//     version regardless of spelling.
//   - Format errors (ErrInvalidVersion, ErrInvalidPreRelease,
//     ErrInvalidBuildMetadata) indicate input that does not match the
//     specification grammar; the error message carries the offending string.
//
// Use IsInvalidArgument and IsFormatError to classify without naming
// individual sentinels. For constant initialization and tests, MustParse
// panics on error:
//
//	var minSupported = semver.MustParse("1.4.0")
package semver
