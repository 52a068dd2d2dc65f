package main

import "oreutils/internal/cli"

func main() {
	cli.Execute()
}
