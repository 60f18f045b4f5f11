package main

import "pdf_merger/cli"

func main() {
	cli.Execute()
}
