package main

import "github.com/quocvuong92/gsh/cmd"

func main() {
	cmd.Execute()
}
