package main

import "roical/cmd"

func main() {
	cmd.Execute()
}
