package main

import "github.com/santiagomed/politica/cli"

func main() {
	cli.Execute()
}
