package main

import "github.com/ishehara/autosched-admin/internal/interfaces/cli"

func main() {
	cli.Execute()
}
