package main

import "minsh/cmd"

func main() {
	cmd.Execute()
}
