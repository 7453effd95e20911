package main

import "github.com/princespaghetti/rootanchor/internal/cli"

func main() {
	cli.Execute()
}
