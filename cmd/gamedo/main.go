package main

import "gamedo/cmd/gamedo/root"

func main() {
	root.Execute()
}
