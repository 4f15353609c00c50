package main

import "github.com/Mystique1337/bible-explainer/cmd"

func main() {
	cmd.Execute()
}
