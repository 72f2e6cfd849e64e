package main

import (
	"context"
	"os"

	"github.com/ytget/tubeflow/internal/cli"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	cli.Version = version
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
