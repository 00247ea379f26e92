package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	assetbridge "github.com/assetbridge/chainext"
	"github.com/assetbridge/chainext/chainext"
	"github.com/assetbridge/chainext/common"
	"github.com/assetbridge/chainext/config"
	"github.com/assetbridge/chainext/ledger/assets"
	"github.com/assetbridge/chainext/log"
	"github.com/assetbridge/chainext/rpc"
	"github.com/assetbridge/chainext/vmhost"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

const meterName = "github.com/assetbridge/chainext/chainext"

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		assetbridge.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	ctx, cancel := context.WithCancel(cliCtx.Context)
	defer cancel()

	store, err := assets.New(log.WithFields("module", common.LEDGER), c.Ledger)
	if err != nil {
		return fmt.Errorf("error opening the asset ledger: %w", err)
	}
	defer store.Close()

	dispatcher, err := createDispatcher(*c, store)
	if err != nil {
		return err
	}

	host, err := vmhost.New(ctx, log.WithFields("module", common.VM), c.VM, dispatcher)
	if err != nil {
		return err
	}
	defer host.Close(context.Background())

	server := createRPC(c.RPC, store, host)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("rpc server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		waitSignal(gctx, []context.CancelFunc{cancel})
		log.Info("terminating application gracefully...")
		return server.Stop()
	})

	return g.Wait()
}

func createDispatcher(c config.Config, store *assets.Store) (*chainext.Dispatcher, error) {
	logger := log.WithFields("module", common.CHAIN_EXTENSION)
	var sink chainext.EventSink
	if c.ChainExtension.EmitEvents {
		metrics, err := chainext.NewMetricSink(otel.Meter(meterName))
		if err != nil {
			return nil, fmt.Errorf("error creating chain extension metrics: %w", err)
		}
		sink = chainext.MultiSink{chainext.NewLogSink(logger), metrics}
	}
	registry := chainext.NewAssetRegistry(c.ChainExtension)
	logger.Infof("serving func ids %v", registry.FuncIDs())
	return chainext.NewDispatcher(logger, store, registry, sink), nil
}

func createRPC(cfg rpc.Config, store *assets.Store, host *vmhost.Host) *jRPC.Server {
	logger := log.WithFields("module", common.RPC)
	services := []jRPC.Service{
		{
			Name: rpc.ASSETS,
			Service: rpc.NewAssetsEndpoints(
				logger,
				cfg.WriteTimeout.Duration,
				cfg.ReadTimeout.Duration,
				cfg.EnableExtensionCall,
				store,
				host,
			),
		},
	}

	return jRPC.NewServer(cfg.Config, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}

func logVersion() {
	log.GetDefaultLogger().Infow("Starting application", assetbridge.GetVersion().KeysAndValues()...)
}

// waitSignal blocks until the process is interrupted or ctx is done
func waitSignal(ctx context.Context, cancelFuncs []context.CancelFunc) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case <-signals:
	case <-ctx.Done():
	}
	for _, cancel := range cancelFuncs {
		cancel()
	}
}
