package main

import "github.com/cmmoran/kpoet/cmd"

func main() {
	cmd.Execute()
}
