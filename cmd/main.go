package main

import (
	"os"

	assetbridge "github.com/assetbridge/chainext"
	"github.com/assetbridge/chainext/config"
	"github.com/assetbridge/chainext/log"
	"github.com/urfave/cli/v2"
)

const appName = "assetbridge"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: false,
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: assetbridge_config.toml)",
		Required: false,
	}
	outputFlag = cli.StringFlag{
		Name:     config.FlagOutputFile,
		Aliases:  []string{"o"},
		Usage:    "Write to `FILE` instead of stdout",
		Required: false,
	}
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Version = assetbridge.Version
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the asset ledger, the chain extension and the RPC server",
			Action:  start,
			Flags:   []cli.Flag{&configFileFlag, &saveConfigFlag},
		},
		{
			Name:    "config",
			Aliases: []string{},
			Usage:   "Print the default configuration, or the rendered one when files are given",
			Action:  configCmd,
			Flags:   []cli.Flag{&configFileFlag},
		},
		{
			Name:    "schema",
			Aliases: []string{},
			Usage:   "Print the JSON schema of the configuration",
			Action:  schemaCmd,
			Flags:   []cli.Flag{&outputFlag},
		},
		{
			Name:        "query",
			Aliases:     []string{"q"},
			Usage:       "Query the assets service of a running node",
			Subcommands: queryCommands(),
		},
		{
			Name:        "admin",
			Usage:       "Freeze or thaw accounts and assets directly on the ledger database (node stopped)",
			Subcommands: adminCommands(),
		},
	}
	return app
}
