package main

import "github.com/msomdec/knit-designer/internal/cli"

func main() {
	cli.Execute()
}
