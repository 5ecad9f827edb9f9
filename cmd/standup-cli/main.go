package main

import (
	"github.com/gitstandup/gitstandup/internal/cli"
)

func main() {
	cli.Execute()
}
