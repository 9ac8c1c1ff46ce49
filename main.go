package main

import "github.com/aschey/lapwatch/cmd"

func main() {
	cmd.Execute()
}
