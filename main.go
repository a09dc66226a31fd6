package main

import "palette/cmd"

func main() {
	cmd.Execute()
}
