package main

import "github.com/lukman83/jumia-reseller/cmd"

func main() {
	cmd.Execute()
}
