package main

import "agioctl/cmd"

func main() {
	cmd.Execute()
}
