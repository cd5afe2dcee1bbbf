// Package main is the entry point for the mayacal command-line tool.
package main

import "github.com/zapponejosh/mayacal-api/internal/cli"

func main() {
	cli.Execute()
}
