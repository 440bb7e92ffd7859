package main

import (
	"os"

	"github.com/n0rdy/palindromes/configs"
)

func main() {
	if err := newRootCmd(configs.NewViper()).Execute(); err != nil {
		os.Exit(1)
	}
}
