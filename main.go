package main

import "github.com/dzjyyds666/wq/cmd"

func main() {
	cmd.Execute()
}
