package main

import "tamalife/internal/cli"

func main() {
	cli.Execute()
}
