package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/jobwirego/internal/app"
	"github.com/vk/jobwirego/internal/cli"
	"github.com/vk/jobwirego/internal/hcl"
)

// main is the entrypoint for the jobwirego compiler.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors (unreadable or malformed
	// job files); recover into a clean error for the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("startup failed: %v", r)
		}
	}()

	loader := hcl.NewLoader()
	compiler := app.NewApp(outW, errW, appConfig, loader)

	return compiler.Run(context.Background())
}
