package main

import (
	necmd "github.com/andytrench/next-express/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	necmd.SetVersionInfo(version, commit)
	necmd.Execute()
}
