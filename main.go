package main

import "github.com/minsh-sh/minsh/cmd"

func main() {
	cmd.Execute()
}
