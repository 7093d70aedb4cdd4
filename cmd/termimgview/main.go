package main

import "github.com/blacktop/termimgview/cmd/termimgview/cmd"

func main() {
	cmd.Execute()
}
