package main

import (
	"github.com/apcamargo/kcounter/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
