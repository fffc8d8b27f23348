package main

import "github.com/cixtor/binarycookies/v2/cmd/binarycookies/cmd"

func main() {
	cmd.Execute()
}
