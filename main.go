package main

import "github.com/snowlit/vndb-timeline/cmd"

func main() {
	cmd.Execute()
}
