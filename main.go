package main

import "github.com/abhii767/Minishell/cmd"

func main() {
	cmd.Execute()
}
