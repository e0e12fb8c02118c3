package main

import "github.com/mgarciagodoy/portfolio/cmd/portfolio-cli/cmd"

func main() {
	cmd.Execute()
}
