package main

import (
	"context"
	"fmt"

	"github.com/assetbridge/chainext/common"
	"github.com/assetbridge/chainext/config"
	"github.com/assetbridge/chainext/ledger"
	"github.com/assetbridge/chainext/ledger/assets"
	"github.com/assetbridge/chainext/log"
	"github.com/urfave/cli/v2"
)

const flagOrigin = "origin"

// adminOp is a freezer operation. who is the zero account for asset wide ones
type adminOp func(s *assets.Store, ctx context.Context, origin ledger.AccountID, id ledger.AssetID,
	who ledger.AccountID) error

func adminCommands() []*cli.Command {
	account := func(name, usage string) *cli.StringFlag {
		return &cli.StringFlag{Name: name, Usage: usage, Required: true}
	}
	origin := account(flagOrigin, "Freezer of the asset the change is made as")
	accountOps := []cli.Flag{&configFileFlag, &assetFlag, origin, account(flagAccount, "Account to freeze or thaw")}
	assetOps := []cli.Flag{&configFileFlag, &assetFlag, origin}

	return []*cli.Command{
		{
			Name:   "freeze",
			Usage:  "Stop an account from sending the asset",
			Flags:  accountOps,
			Action: adminAction(true, (*assets.Store).Freeze),
		},
		{
			Name:   "thaw",
			Usage:  "Revert freeze",
			Flags:  accountOps,
			Action: adminAction(true, (*assets.Store).Thaw),
		},
		{
			Name:  "freeze-asset",
			Usage: "Stop every transfer of the asset",
			Flags: assetOps,
			Action: adminAction(false, func(s *assets.Store, ctx context.Context, origin ledger.AccountID,
				id ledger.AssetID, _ ledger.AccountID) error {
				return s.FreezeAsset(ctx, origin, id)
			}),
		},
		{
			Name:  "thaw-asset",
			Usage: "Revert freeze-asset",
			Flags: assetOps,
			Action: adminAction(false, func(s *assets.Store, ctx context.Context, origin ledger.AccountID,
				id ledger.AssetID, _ ledger.AccountID) error {
				return s.ThawAsset(ctx, origin, id)
			}),
		},
	}
}

func adminAction(withAccount bool, op adminOp) cli.ActionFunc {
	return func(cliCtx *cli.Context) error {
		c, err := config.Load(cliCtx)
		if err != nil {
			return err
		}
		log.Init(c.Log)

		origin, err := parseAccount(cliCtx, flagOrigin)
		if err != nil {
			return err
		}
		var who ledger.AccountID
		if withAccount {
			if who, err = parseAccount(cliCtx, flagAccount); err != nil {
				return err
			}
		}

		store, err := assets.New(log.WithFields("module", common.LEDGER), c.Ledger)
		if err != nil {
			return fmt.Errorf("error opening the asset ledger: %w", err)
		}
		defer store.Close()

		id := ledger.AssetID(assetID(cliCtx))
		if err := op(store, cliCtx.Context, origin, id, who); err != nil {
			return fmt.Errorf("%s asset %d: %w", cliCtx.Command.Name, id, err)
		}
		log.Infof("%s asset %d done", cliCtx.Command.Name, id)
		return nil
	}
}
