package main

import "github.com/danmuck/ledgerctl/internal/cli"

func main() {
	cli.Execute()
}
