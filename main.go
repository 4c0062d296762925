package main

import (
	"github.com/mj1618/tilerc/cmd"

	_ "github.com/mj1618/tilerc/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
