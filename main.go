package main

import "github.com/aeroform/wingpanel/cmd"

func main() {
	cmd.Execute()
}
