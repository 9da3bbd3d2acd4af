package main

import "aimlookup/cmd"

func main() {
	cmd.Execute()
}
