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

// Package split decomposes a URL string into its structural components:
// scheme, userinfo, host, port, path, query and fragment.
//
// Parsing is total. Parse never returns an error; it produces a best-effort
// Components record in which pieces it could not recognize are simply absent.
// This makes the package suitable for inspecting partial, relative or outright
// malformed input, which a strict RFC 3986 parser would reject.
//
// Key properties:
//   - Absence is distinct from emptiness. An input without userinfo has no
//     user at all, while "http://@host" has a present, empty user. Accessors
//     return a (value, ok) pair to preserve the distinction.
//   - All stored text is percent-decoded, except the scheme token.
//   - The query is an ordered multi-map: duplicate keys survive and insertion
//     order is the order of appearance in the raw query string.
//   - No normalization or canonicalization is performed on the URL itself.
//     ParseNormalized only applies Unicode NFC to the input text, mirroring
//     the treatment of internationalized identifiers whose byte form varies
//     by source.
package split

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Components is the immutable result of decomposing a URL string. It is
// constructed by Parse and read through its accessor methods; the zero value
// is a record with every field absent.
type Components struct {
	scheme      string
	hasScheme   bool
	user        string
	hasUser     bool
	password    string
	hasPassword bool
	host        string
	hasHost     bool
	port        uint16
	hasPort     bool
	path        string
	hasPath     bool
	fragment    string
	hasFragment bool
	query       []Pair
}

// Parse decomposes raw into its components. It never fails: unrecognizable
// pieces leave the corresponding fields absent rather than producing an error.
//
// The input is consumed left to right. The fragment is everything after the
// first '#'. A leading token of letters, digits, '+', '-' or '.' followed by
// ':' is the scheme; an optional '//' after it is stripped. The query is
// everything after the first '?' of what remains. When a scheme or a '//'
// prefix was seen, the remainder up to the first '/' is the authority and the
// rest, slash included, is the path; otherwise the whole remainder is the
// path, so relative references like "a/b" or "/c" come out path-only.
func Parse(raw string) Components {
	var c Components
	rest := raw

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		c.fragment = percentDecode(rest[i+1:], false)
		c.hasFragment = true
		rest = rest[:i]
	}

	hasAuthority := false
	if token, after, ok := splitScheme(rest); ok {
		c.scheme = token
		c.hasScheme = true
		hasAuthority = true
		rest = strings.TrimPrefix(after, "//")
	} else if strings.HasPrefix(rest, "//") {
		hasAuthority = true
		rest = rest[2:]
	}

	if i := strings.IndexByte(rest, '?'); i >= 0 {
		c.query = DecodeQuery(rest[i+1:])
		rest = rest[:i]
	}

	if hasAuthority {
		authority := rest
		rest = ""
		if i := strings.IndexByte(authority, '/'); i >= 0 {
			rest = authority[i:]
			authority = authority[:i]
		}
		c.parseAuthority(authority)
	}

	// An empty trailing path is absent, not the empty string.
	if rest != "" {
		c.path = percentDecode(rest, false)
		c.hasPath = true
	}

	return c
}

// ParseNormalized applies Unicode Normalization Form C to raw before parsing.
// Canonically equivalent inputs then produce identical records, which matters
// when the string was typed, pasted or converted from a legacy encoding and
// its combining characters may not be composed.
func ParseNormalized(raw string) Components {
	return Parse(norm.NFC.String(raw))
}

// splitScheme matches a leading "<token>:" where the token consists of
// letters, digits, '+', '-' and '.'. It reports the token and the remainder
// after the colon.
func splitScheme(s string) (token, rest string, ok bool) {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == ':' {
			if i == 0 {
				return "", "", false
			}
			return s[:i], s[i+1:], true
		}
		if !isSchemeByte(b) {
			return "", "", false
		}
	}
	return "", "", false
}

func isSchemeByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' || b == '+' || b == '-' || b == '.'
}

// Scheme returns the scheme token and whether it was present. The scheme is
// the only field stored verbatim, without percent-decoding.
func (c Components) Scheme() (string, bool) {
	return c.scheme, c.hasScheme
}

// User returns the user part of the userinfo and whether userinfo was present.
// "http://@host" yields a present, empty user, while "http://host" yields an
// absent one.
func (c Components) User() (string, bool) {
	return c.user, c.hasUser
}

// Password returns the password part of the userinfo and whether it was
// present. A password is only ever present together with a user.
func (c Components) Password() (string, bool) {
	return c.password, c.hasPassword
}

// Host returns the host and whether it was present. A bracketed IPv6 literal
// keeps its brackets.
func (c Components) Host() (string, bool) {
	return c.host, c.hasHost
}

// Port returns the port and whether it was present. A port that is not a
// decimal number in the range 0 to 65535 is dropped during parsing and
// reported as absent here.
func (c Components) Port() (uint16, bool) {
	return c.port, c.hasPort
}

// Path returns the path and whether it was present. A URL whose authority is
// followed by nothing at all has an absent path, not an empty one.
func (c Components) Path() (string, bool) {
	return c.path, c.hasPath
}

// Fragment returns the fragment and whether a '#' was present. A trailing '#'
// yields a present, empty fragment.
func (c Components) Fragment() (string, bool) {
	return c.fragment, c.hasFragment
}

// Query returns the decoded query pairs in their order of appearance. The
// slice is nil when the URL carried no query or an empty one.
func (c Components) Query() []Pair {
	return c.query
}
