package main

import "quicktask.com/quicktask/cmd"

func main() {
	cmd.Execute()
}
