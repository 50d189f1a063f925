package main

import "github.com/prakashpaswan/employee-portal/cmd"

func main() {
	cmd.Execute()
}
