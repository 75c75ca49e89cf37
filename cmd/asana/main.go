package main

import (
	"os"

	"github.com/ArnautVasile/asana-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
