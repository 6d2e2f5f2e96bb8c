package main

import "github.com/osse101/StormSheet_Go/cmd/rollctl/cmd"

func main() {
	cmd.Execute()
}
