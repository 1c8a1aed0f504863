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

package split

import "strings"

// Pair is a single key/value entry of a query string. Keys are not unique
// across a query; a segment without '=' decodes to a Pair with an empty
// Value.
type Pair struct {
	Key   string
	Value string
}

// DecodeQuery splits a raw query string into its ordered key/value pairs.
// Segments are separated by '&'; empty segments from consecutive, leading or
// trailing '&' contribute no pair. Each segment splits on its first '=', and
// key and value are percent-decoded independently afterwards, so an encoded
// "%26" or "%3D" inside a value is never taken for a separator. Within a
// query, '+' decodes to a space.
func DecodeQuery(raw string) []Pair {
	var pairs []Pair
	for raw != "" {
		var segment string
		segment, raw, _ = strings.Cut(raw, "&")
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		pairs = append(pairs, Pair{
			Key:   percentDecode(key, true),
			Value: percentDecode(value, true),
		})
	}
	return pairs
}

// percentDecode resolves %XX escapes in s. It never fails: a '%' that is not
// followed by two hex digits is emitted literally. When plusToSpace is set,
// '+' decodes to a space; that convention belongs to form-encoded query
// strings only and must stay off for every other component.
func percentDecode(s string, plusToSpace bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch {
		case s[i] == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]):
			b.WriteByte(hexValue(s[i+1])<<4 | hexValue(s[i+2]))
			i += 3
		case s[i] == '+' && plusToSpace:
			b.WriteByte(' ')
			i++
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func hexValue(b byte) byte {
	switch {
	case b >= 'a':
		return b - 'a' + 10
	case b >= 'A':
		return b - 'A' + 10
	default:
		return b - '0'
	}
}
