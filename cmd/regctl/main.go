package main

import (
	"github.com/pm-platform/registry/cmd/regctl/command"
)

func main() {
	command.Execute()
}
