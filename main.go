package main

import "github.com/rpgo/runway-calculator/cmd"

func main() {
	cmd.Execute()
}
