package main

import "churnprep/cmd"

func main() {
	cmd.Execute()
}
