package main

import "github.com/twistedmove/lhotse/internal/cli"

func main() {
	cli.Main()
}
