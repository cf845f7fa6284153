package main

import (
	"os"

	"github.com/bender-renderfarm/bender-config/cmd"
	"github.com/bender-renderfarm/bender-config/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
