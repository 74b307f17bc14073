package main

import "github.com/lazypower/octavia/internal/cli"

func main() {
	cli.Main()
}
