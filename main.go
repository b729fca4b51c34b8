package main

import "github.com/they4kman/gosweep9/cmd"

func main() {
	cmd.Execute()
}
