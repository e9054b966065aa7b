package main

import (
	"github.com/Alonso287/onthisday/internal/cli"
)

func main() {
	cli.Execute()
}
