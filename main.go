package main

import "github.com/mkarwowski/bingoroom/cmd"

func main() {
	cmd.Execute()
}
