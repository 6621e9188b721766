package main

import "github.com/nextlevelbuilder/teleconf/cmd"

func main() {
	cmd.Execute()
}
