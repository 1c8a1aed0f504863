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
	"strconv"
	"strings"
)

// parseAuthority decomposes an authority segment into userinfo, host and port
// and stores the decoded results on the record. The userinfo boundary is the
// last '@', so a password containing '@' does not shift the host. Within the
// userinfo, the first ':' separates user from password; a userinfo without
// ':' is all user. An empty authority stores nothing.
func (c *Components) parseAuthority(authority string) {
	if authority == "" {
		return
	}

	hostport := authority
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		user, password, hasPassword := strings.Cut(authority[:i], ":")
		c.user = percentDecode(user, false)
		c.hasUser = true
		if hasPassword {
			c.password = percentDecode(password, false)
			c.hasPassword = true
		}
		hostport = authority[i+1:]
	}

	host, port := splitHostPort(hostport)
	if host != "" {
		c.host = percentDecode(host, false)
		c.hasHost = true
	}
	// A port that is not a decimal number fitting 16 bits is dropped.
	if n, err := strconv.ParseUint(port, 10, 16); err == nil {
		c.port = uint16(n)
		c.hasPort = true
	}
}

// splitHostPort separates a host from its optional port on the last ':' that
// is not inside a bracketed IPv6 literal. A bracketed literal keeps its
// brackets as part of the host; an unterminated '[' swallows the whole rest
// as host.
func splitHostPort(hostport string) (host, port string) {
	if strings.HasPrefix(hostport, "[") {
		end := strings.LastIndexByte(hostport, ']')
		if end < 0 {
			return hostport, ""
		}
		host = hostport[:end+1]
		if end+1 < len(hostport) && hostport[end+1] == ':' {
			port = hostport[end+2:]
		}
		return host, port
	}

	if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
		return hostport[:i], hostport[i+1:]
	}
	return hostport, ""
}
