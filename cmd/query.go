package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/assetbridge/chainext/ledger"
	"github.com/assetbridge/chainext/rpc"
	"github.com/urfave/cli/v2"
)

const (
	flagURL      = "url"
	flagAsset    = "asset"
	flagAccount  = "account"
	flagOwner    = "owner"
	flagDelegate = "delegate"
)

var (
	urlFlag = cli.StringFlag{
		Name:  flagURL,
		Usage: "JSON-RPC endpoint of a running node",
		Value: "http://localhost:5577",
	}
	assetFlag = cli.UintFlag{
		Name:     flagAsset,
		Usage:    "Asset id",
		Required: true,
	}
)

func queryCommands() []*cli.Command {
	account := func(name string) *cli.StringFlag {
		return &cli.StringFlag{Name: name, Usage: "0x prefixed 32 byte account", Required: true}
	}
	return []*cli.Command{
		{
			Name:  "balance",
			Usage: "Balance of an account",
			Flags: []cli.Flag{&urlFlag, &assetFlag, account(flagAccount)},
			Action: func(cliCtx *cli.Context) error {
				who, err := parseAccount(cliCtx, flagAccount)
				if err != nil {
					return err
				}
				return printResult(rpc.NewClient(cliCtx.String(flagURL)).Balance(assetID(cliCtx), who))
			},
		},
		{
			Name:  "supply",
			Usage: "Total supply of an asset",
			Flags: []cli.Flag{&urlFlag, &assetFlag},
			Action: func(cliCtx *cli.Context) error {
				return printResult(rpc.NewClient(cliCtx.String(flagURL)).TotalSupply(assetID(cliCtx)))
			},
		},
		{
			Name:  "allowance",
			Usage: "Amount a delegate may transfer on behalf of an owner",
			Flags: []cli.Flag{&urlFlag, &assetFlag, account(flagOwner), account(flagDelegate)},
			Action: func(cliCtx *cli.Context) error {
				owner, err := parseAccount(cliCtx, flagOwner)
				if err != nil {
					return err
				}
				delegate, err := parseAccount(cliCtx, flagDelegate)
				if err != nil {
					return err
				}
				return printResult(rpc.NewClient(cliCtx.String(flagURL)).Allowance(assetID(cliCtx), owner, delegate))
			},
		},
		{
			Name:  "metadata",
			Usage: "Metadata of an asset",
			Flags: []cli.Flag{&urlFlag, &assetFlag},
			Action: func(cliCtx *cli.Context) error {
				return printResult(rpc.NewClient(cliCtx.String(flagURL)).Metadata(assetID(cliCtx)))
			},
		},
	}
}

func assetID(cliCtx *cli.Context) uint32 {
	return uint32(cliCtx.Uint(flagAsset))
}

func parseAccount(cliCtx *cli.Context, flag string) (ledger.AccountID, error) {
	var a ledger.AccountID
	if err := a.UnmarshalText([]byte(cliCtx.String(flag))); err != nil {
		return a, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return a, nil
}

func printResult(v interface{}, err error) error {
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
