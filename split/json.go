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

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON implements the json.Marshaler interface. The object is a single
// line with keys in the fixed order scheme, user, password, host, port, path,
// fragment, query; absent fields contribute no key at all, mirroring the
// omission rule of the text renderer. The port is a JSON number.
//
// The query becomes a nested object. JSON keys must be unique while the query
// model allows duplicates, so when a key repeats, its later occurrence
// overwrites the earlier one; keys keep the order of their first appearance.
// This collapse is lossy and deliberate, a constraint of the target format
// rather than of the model.
func (c Components) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	field := func(name string, value any) {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		// Marshaling a string or an integer cannot fail.
		key, _ := json.Marshal(name)
		buf.Write(key)
		buf.WriteByte(':')
		val, _ := json.Marshal(value)
		buf.Write(val)
	}

	if v, ok := c.Scheme(); ok {
		field("scheme", v)
	}
	if v, ok := c.User(); ok {
		field("user", v)
	}
	if v, ok := c.Password(); ok {
		field("password", v)
	}
	if v, ok := c.Host(); ok {
		field("host", v)
	}
	if v, ok := c.Port(); ok {
		field("port", v)
	}
	if v, ok := c.Path(); ok {
		field("path", v)
	}
	if v, ok := c.Fragment(); ok {
		field("fragment", v)
	}
	if len(c.query) > 0 {
		field("query", json.RawMessage(marshalQueryObject(c.query)))
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalQueryObject collapses ordered pairs into a JSON object. Keys appear
// in the order of their first occurrence and a repeated key takes its last
// value.
func marshalQueryObject(pairs []Pair) []byte {
	order := make([]string, 0, len(pairs))
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if _, seen := values[p.Key]; !seen {
			order = append(order, p.Key)
		}
		values[p.Key] = p.Value
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(k)
		buf.Write(key)
		buf.WriteByte(':')
		val, _ := json.Marshal(values[k])
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}
