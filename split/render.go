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
	"fmt"
	"strconv"
	"strings"
)

const textHeader = "URL Components:"

// labelWidth fits the widest field labels, "password" and "fragment".
const labelWidth = 8

// Render formats a record for display. In JSON mode it produces the
// single-line object described at MarshalJSON. Otherwise it produces an
// aligned text block: a header line, then one labeled line per present field
// in the order scheme, user, password, host, port, path, fragment, query.
// Absent fields are omitted entirely rather than shown blank. The query label
// line is always emitted; each pair follows it as an indented "key = value"
// line in insertion order. The result carries no trailing newline.
func Render(c Components, jsonMode bool) string {
	if jsonMode {
		data, err := c.MarshalJSON()
		if err != nil {
			// Unreachable: every value marshaled is a plain string or number.
			panic(err)
		}
		return string(data)
	}

	var b strings.Builder
	b.WriteString(textHeader)

	writeField := func(label, value string) {
		fmt.Fprintf(&b, "\n  %-*s : %s", labelWidth, label, value)
	}

	if v, ok := c.Scheme(); ok {
		writeField("scheme", v)
	}
	if v, ok := c.User(); ok {
		writeField("user", v)
	}
	if v, ok := c.Password(); ok {
		writeField("password", v)
	}
	if v, ok := c.Host(); ok {
		writeField("host", v)
	}
	if v, ok := c.Port(); ok {
		writeField("port", strconv.FormatUint(uint64(v), 10))
	}
	if v, ok := c.Path(); ok {
		writeField("path", v)
	}
	if v, ok := c.Fragment(); ok {
		writeField("fragment", v)
	}

	fmt.Fprintf(&b, "\n  %-*s :", labelWidth, "query")
	for _, p := range c.query {
		fmt.Fprintf(&b, "\n    %s = %s", p.Key, p.Value)
	}

	return b.String()
}
