package main

import (
	"github.com/c9s/novaex/pkg/cmd"
)

func main() {
	cmd.Execute()
}
