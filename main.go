package main

import "github.com/getdeskhelp/deskhelp-cli/cmd"

func main() {
	cmd.Execute()
}
