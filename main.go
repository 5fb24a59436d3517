package main

import "github.com/reedery/AirGrist/cmd"

func main() {
	cmd.Execute()
}
