package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sapuseven/issuereport/cli"
	"github.com/sapuseven/issuereport/version"
)

// Set via -ldflags "-X main.Version=... -X main.BuildNumber=...".
var (
	Version     = "0.0.0-dev"
	BuildNumber = "0"
	BuildDate   = "unknown"
	GitCommit   = "unknown"
)

func main() {
	info := version.New("issuereport")
	info.Version = Version
	info.BuildNumber = BuildNumber
	info.BuildDate = BuildDate
	info.GitCommit = GitCommit

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(info, cli.DefaultDeps(info))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
