package main

import "github.com/chrisdamba/foodfleet/cmd"

func main() {
	cmd.Execute()
}
