package main

import (
	"os"

	"github.com/kest-labs/kest-admin/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
