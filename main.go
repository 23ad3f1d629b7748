package main

import "rotationcards/internal/cli"

func main() {
	cli.Execute()
}
