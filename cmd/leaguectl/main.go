package main

import (
	"github.com/daygrid/leagues/internal/cli"
)

func main() {
	cli.Execute()
}
