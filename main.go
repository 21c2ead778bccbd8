package main

import "github.com/tinfab/rackmount/cmd"

func main() {
	cmd.Execute()
}
