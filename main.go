package main

import "github.com/khenritz/azsite/cmd"

func main() {
	cmd.Execute()
}
