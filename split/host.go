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
	"strings"

	"golang.org/x/net/idna"
)

// ASCIIHost returns the host in its IDNA ASCII (Punycode) form, the one
// resolvable in DNS, together with a presence flag. The stored host is not
// modified. IP literals and hosts the IDNA mapping rejects are returned as
// stored.
func (c Components) ASCIIHost() (string, bool) {
	if !c.hasHost || strings.HasPrefix(c.host, "[") {
		return c.host, c.hasHost
	}
	ascii, err := idna.ToASCII(c.host)
	if err != nil {
		return c.host, true
	}
	return ascii, true
}

// UnicodeHost returns the host in its IDNA Unicode display form, converting a
// Punycode label like "xn--bcher-kva" back to its readable shape, together
// with a presence flag. The stored host is not modified. IP literals and
// hosts the IDNA mapping rejects are returned as stored.
func (c Components) UnicodeHost() (string, bool) {
	if !c.hasHost || strings.HasPrefix(c.host, "[") {
		return c.host, c.hasHost
	}
	unicode, err := idna.ToUnicode(c.host)
	if err != nil {
		return c.host, true
	}
	return unicode, true
}
