// Package main implements the entry point for the WorkStream Monitor CLI,
// a single-user task dashboard that tracks ownership, status, and
// execution risk for small engineering teams.
package main

import "github.com/phrazzld/workstream/internal/cli"

func main() {
	cli.Execute()
}
