package main

import "vimbridge/cmd/vimbridge-cli/cmd"

func main() {
	cmd.Execute()
}
