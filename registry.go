package main

import (
	"github.com/pm-platform/registry/api"
)

func main() {
	api.MainLoop()
}
