package main

import "scrapekit/cmd"

func main() {
	cmd.Execute()
}
