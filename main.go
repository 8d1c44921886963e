package main

import "arabicrackr/cmd"

func main() {
	cmd.Execute()
}
