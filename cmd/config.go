package main

import (
	"os"

	"github.com/assetbridge/chainext/config"
	"github.com/urfave/cli/v2"
)

func configCmd(cliCtx *cli.Context) error {
	if len(cliCtx.StringSlice(config.FlagCfg)) == 0 {
		_, err := os.Stdout.WriteString(config.DefaultVars + config.DefaultValues)
		return err
	}

	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}
	out, err := config.SaveConfigToString(*c)
	if err != nil {
		return err
	}
	_, err = os.Stdout.WriteString(out)
	return err
}

func schemaCmd(cliCtx *cli.Context) error {
	schema, err := config.Schema()
	if err != nil {
		return err
	}
	if path := cliCtx.String(config.FlagOutputFile); path != "" {
		return os.WriteFile(path, schema, config.DefaultCreationFilePermissions)
	}
	_, err = os.Stdout.Write(append(schema, '\n'))
	return err
}
