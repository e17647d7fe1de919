// SPDX-License-Identifier: MIT

// Command patterns runs the design pattern demonstrations.
package main

import "github.com/katalvlaran/patterns/internal/cli"

func main() {
	cli.Execute()
}
