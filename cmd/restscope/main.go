// Package main is the entry point for the restscope CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/restscope/cli/internal/cmd"
	oerrors "github.com/restscope/cli/internal/errors"
)

func main() {
	// RESTSCOPE_* variables may be kept in a per-checkout .env file.
	_ = godotenv.Load()

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
