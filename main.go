package main

import (
	"cdf-scope/cli"
)

func main() {
	cli.Start()
}
