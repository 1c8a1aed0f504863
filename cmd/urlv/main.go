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

// Command urlv decomposes a URL into its components and prints them, either
// as an aligned text block or as a single-line JSON object. The URL comes
// from the first non-flag argument, or from standard input when no argument
// is given.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"urlv/split"
)

const version = "urlv 0.1.0"

const usage = `usage: urlv [options] [URL]

Decompose a URL into its components and print them.

If no URL argument is given, the URL is read from standard input.

Options:
  -j, --json     print the components as a single-line JSON object
      --nfc      apply Unicode NFC normalization to the input before parsing
  -h, --help     print this help text and exit
  -V, --version  print version information and exit
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the testable body of the command. It interprets args, obtains the
// raw URL, and writes the rendered result to stdout. The exit code is 0 on
// success and 2 when no input was provided.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var jsonMode, nfc bool
	var raw string
	haveArg := false

	for _, arg := range args {
		switch arg {
		case "-j", "--json":
			jsonMode = true
		case "--nfc":
			nfc = true
		case "-h", "--help":
			fmt.Fprint(stdout, usage)
			return 0
		case "-V", "--version":
			fmt.Fprintln(stdout, version)
			return 0
		default:
			raw = arg
			haveArg = true
		}
	}

	if !haveArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "urlv: reading standard input: %v\n", err)
			return 2
		}
		raw = strings.TrimSuffix(string(data), "\n")
		raw = strings.TrimSuffix(raw, "\r")
	}

	if raw == "" {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var c split.Components
	if nfc {
		c = split.ParseNormalized(raw)
	} else {
		c = split.Parse(raw)
	}

	fmt.Fprintln(stdout, split.Render(c, jsonMode))
	return 0
}
