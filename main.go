package main

import "github.com/VoxDroid/vff/cmd"

func main() {
	cmd.Execute()
}
