/*
Copyright 2026 Urlv Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:testpackage // White-box tests for the unexported percent decoder.
package split

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Pair
	}{
		{
			name: "two pairs",
			raw:  "a=1&b=2",
			want: []Pair{{"a", "1"}, {"b", "2"}},
		},
		{
			name: "missing equals and empty value",
			raw:  "a&b=",
			want: []Pair{{"a", ""}, {"b", ""}},
		},
		{
			name: "empty query",
			raw:  "",
			want: nil,
		},
		{
			name: "empty segments dropped",
			raw:  "&&a=1&&",
			want: []Pair{{"a", "1"}},
		},
		{
			name: "split on first equals only",
			raw:  "a=b=c",
			want: []Pair{{"a", "b=c"}},
		},
		{
			name: "encoded ampersand stays in value",
			raw:  "a=1%262",
			want: []Pair{{"a", "1&2"}},
		},
		{
			name: "encoded equals stays in key",
			raw:  "a%3Db=c",
			want: []Pair{{"a=b", "c"}},
		},
		{
			name: "duplicate keys preserved in order",
			raw:  "k=1&x=9&k=2",
			want: []Pair{{"k", "1"}, {"x", "9"}, {"k", "2"}},
		},
		{
			name: "plus decodes to space",
			raw:  "a=b+c&d+e=f",
			want: []Pair{{"a", "b c"}, {"d e", "f"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DecodeQuery(tc.raw))
		})
	}
}

func TestPercentDecode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		plusToSpace bool
		want        string
	}{
		{
			name:  "idempotent on plain text",
			input: "hello-world",
			want:  "hello-world",
		},
		{
			name:  "uppercase hex",
			input: "%41%42",
			want:  "AB",
		},
		{
			name:  "lowercase hex",
			input: "%2f",
			want:  "/",
		},
		{
			name:  "lone percent",
			input: "%",
			want:  "%",
		},
		{
			name:  "truncated escape",
			input: "100%2",
			want:  "100%2",
		},
		{
			name:  "non-hex digits after percent",
			input: "%zz",
			want:  "%zz",
		},
		{
			name:  "invalid escape followed by valid one",
			input: "%g1%20",
			want:  "%g1 ",
		},
		{
			name:  "plus literal outside query context",
			input: "a+b",
			want:  "a+b",
		},
		{
			name:        "plus is space in query context",
			input:       "a+b",
			plusToSpace: true,
			want:        "a b",
		},
		{
			name:        "encoded plus survives either way",
			input:       "%2B",
			plusToSpace: true,
			want:        "+",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, percentDecode(tc.input, tc.plusToSpace))
		})
	}
}
