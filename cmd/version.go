package main

import (
	"os"

	assetbridge "github.com/assetbridge/chainext"
	"github.com/urfave/cli/v2"
)

func versionCmd(*cli.Context) error {
	assetbridge.PrintVersion(os.Stdout)
	return nil
}
