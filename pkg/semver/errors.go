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

import "errors"

// Invalid-argument errors. These indicate input that can never form a
// version, independent of its grammar.
var (
	// ErrEmptyVersion indicates an empty string was passed to Parse.
	ErrEmptyVersion = errors.New("version string is empty")
	// ErrNegativeComponent indicates a negative major, minor, or patch value.
	ErrNegativeComponent = errors.New("version component cannot be negative")
	// ErrZeroVersion indicates major, minor, and patch were all zero.
	ErrZeroVersion = errors.New("major, minor, and patch cannot all be zero")
)

// Format errors. These indicate input that does not match the Semantic
// Versioning grammar; the wrapping error carries the offending string.
var (
	// ErrInvalidVersion indicates a version string that does not match the
	// full version grammar.
	ErrInvalidVersion = errors.New("invalid semantic version")
	// ErrInvalidPreRelease indicates a pre-release field that does not match
	// the pre-release grammar.
	ErrInvalidPreRelease = errors.New("invalid pre-release")
	// ErrInvalidBuildMetadata indicates a build metadata field that does not
	// match the build metadata grammar.
	ErrInvalidBuildMetadata = errors.New("invalid build metadata")
)

// IsInvalidArgument reports whether err is one of the invalid-argument
// errors: empty input, a negative component, or the all-zero version.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrEmptyVersion) ||
		errors.Is(err, ErrNegativeComponent) ||
		errors.Is(err, ErrZeroVersion)
}

// IsFormatError reports whether err indicates input rejected by one of the
// identifier grammars.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrInvalidVersion) ||
		errors.Is(err, ErrInvalidPreRelease) ||
		errors.Is(err, ErrInvalidBuildMetadata)
}
