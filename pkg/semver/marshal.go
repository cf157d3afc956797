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

import "gopkg.in/yaml.v3"

// The canonical string form is the only wire representation of a Version.
// Text-based encoders (encoding/json among them) pick it up through the
// encoding.TextMarshaler and TextUnmarshaler interfaces; YAML documents go
// through the yaml.v3 hooks below. Decoding always runs the full Parse path,
// so invalid wire data fails with the same errors as direct parsing.

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing the canonical
// form. The receiver is only modified on success.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the canonical form as a
// YAML scalar.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for gopkg.in/yaml.v3. The node
// must be a scalar holding a valid version string.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
