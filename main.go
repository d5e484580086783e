package main

import "github.com/jreidinger/pull-requests-reminder/cmd"

func main() {
	cmd.Execute()
}
