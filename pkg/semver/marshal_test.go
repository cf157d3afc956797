package semver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type release struct {
	Name    string  `json:"name" yaml:"name"`
	Version Version `json:"version" yaml:"version"`
}

func TestJSONRoundTrip(t *testing.T) {
	tests := []string{
		"1.2.3",
		"1.0.0-alpha.1",
		"1.0.0-rc.1+build.17",
		"0.1.0+001",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			in := release{Name: "demo", Version: MustParse(input)}

			data, err := json.Marshal(in)
			require.NoError(t, err)
			assert.JSONEq(t, `{"name":"demo","version":"`+input+`"}`, string(data))

			var out release
			require.NoError(t, json.Unmarshal(data, &out))
			assert.True(t, in.Version.Equal(out.Version))
			assert.Equal(t, in.Version.BuildMetadata(), out.Version.BuildMetadata())
		})
	}
}

func TestJSONUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed version", input: `{"name":"demo","version":"1.0"}`},
		{name: "v prefix", input: `{"name":"demo","version":"v1.0.0"}`},
		{name: "empty version", input: `{"name":"demo","version":""}`},
		{name: "all zero", input: `{"name":"demo","version":"0.0.0"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out release
			err := json.Unmarshal([]byte(tt.input), &out)
			require.Error(t, err)
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	tests := []string{
		"1.2.3",
		"1.0.0-alpha.1",
		"1.0.0-rc.1+build.17",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			in := release{Name: "demo", Version: MustParse(input)}

			data, err := yaml.Marshal(in)
			require.NoError(t, err)

			var out release
			require.NoError(t, yaml.Unmarshal(data, &out))
			assert.True(t, in.Version.Equal(out.Version))
			assert.Equal(t, in.Version.BuildMetadata(), out.Version.BuildMetadata())
		})
	}
}

func TestYAMLMarshalScalar(t *testing.T) {
	data, err := yaml.Marshal(MustParse("1.0.0-rc.1"))
	require.NoError(t, err)
	assert.Equal(t, "1.0.0-rc.1\n", string(data))
}

func TestYAMLUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed version", input: "version: 1.0\nname: demo"},
		{name: "non-scalar node", input: "version:\n  major: 1\nname: demo"},
		{name: "all zero", input: "version: 0.0.0\nname: demo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out release
			err := yaml.Unmarshal([]byte(tt.input), &out)
			require.Error(t, err)
		})
	}
}

func TestUnmarshalTextKeepsReceiverOnError(t *testing.T) {
	v := MustParse("1.2.3")
	err := v.UnmarshalText([]byte("not-a-version"))
	require.Error(t, err)
	assert.Equal(t, "1.2.3", v.String())
}
