package main

import "github.com/wellnest-hq/wellnest_backend/cmd"

func main() {
	cmd.Execute()
}
