package main

import "github.com/andrewpaige1/wisdom-compass-api/cli"

func main() {
	cli.Execute()
}
