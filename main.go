package main

import "github.com/codifire/designpatterns/cmd"

func main() {
	cmd.Execute()
}
