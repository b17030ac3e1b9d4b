package main

import "github.com/Crashito0982/PruebaTecnica/cmd"

func main() {
	cmd.Execute()
}
