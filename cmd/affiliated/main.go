package main

import (
	"os"

	"github.com/archangel777IA/plataforma-de-afiliados-impulse/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
