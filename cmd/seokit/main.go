package main

import "seokit/internal/cli"

func main() {
	cli.Execute()
}
