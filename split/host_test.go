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

//nolint:testpackage // Shares the package with the rest of the white-box tests.
package split

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestASCIIHost(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "internationalized host to Punycode",
			input:  "https://bücher.example/x",
			want:   "xn--bcher-kva.example",
			wantOK: true,
		},
		{
			name:   "plain ASCII host unchanged",
			input:  "https://example.com",
			want:   "example.com",
			wantOK: true,
		},
		{
			name:   "IPv6 literal passed through",
			input:  "http://[::1]:80/",
			want:   "[::1]",
			wantOK: true,
		},
		{
			name:  "no host",
			input: "relative/path",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			host, ok := Parse(tc.input).ASCIIHost()
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, host)
		})
	}
}

func TestUnicodeHost(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "Punycode host to Unicode",
			input:  "https://xn--bcher-kva.example/x",
			want:   "bücher.example",
			wantOK: true,
		},
		{
			name:   "plain ASCII host unchanged",
			input:  "https://example.com",
			want:   "example.com",
			wantOK: true,
		},
		{
			name:   "IPv6 literal passed through",
			input:  "http://[::1]/",
			want:   "[::1]",
			wantOK: true,
		},
		{
			name:  "no host",
			input: "?a=b",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			host, ok := Parse(tc.input).UnicodeHost()
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, host)
		})
	}
}
