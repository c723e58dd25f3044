package main

import "github.com/alexiusacademia/rcdetail/cmd"

func main() {
	cmd.Execute()
}
