package main

import "github.com/OfficialArms/virtool/cmd/virtool/cmd"

func main() {
	cmd.Execute()
}
