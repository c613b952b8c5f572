package main

import (
	"os"

	"github.com/wliu/gradewise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
