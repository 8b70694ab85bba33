package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/metrics"
	observed "github.com/goodnatureofminers/blockinsight7000-indexer/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/address"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/headers"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/query"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/repository/leveldb"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/scripthash"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/service/ingester"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/xpub"
)

type config struct {
	Addr          string        `long:"addr" env:"API_GATEWAY_ADDR" description:"gRPC listen address" default:":8000"`
	RestAddr      string        `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"REST listen address" default:":8001"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Coin          model.Coin    `long:"coin" env:"API_GATEWAY_COIN" description:"coin name" default:"BTC"`
	Network       model.Network `long:"network" env:"API_GATEWAY_NETWORK" description:"network name" default:"mainnet"`
	RPCURL        string        `long:"rpc-url" env:"API_GATEWAY_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"API_GATEWAY_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"API_GATEWAY_RPC_PASSWORD" description:"Bitcoin RPC password"`
	HeaderDB      string        `long:"header-db" env:"API_GATEWAY_HEADER_DB" description:"path of the header store" default:"data/headers"`
	ZMQAddr       string        `long:"zmq-addr" env:"API_GATEWAY_ZMQ_ADDR" description:"bitcoind zmq hashblock endpoint (requires the zmq build tag)"`
	PollInterval  time.Duration `long:"poll-interval" env:"API_GATEWAY_POLL_INTERVAL" description:"header follower poll interval" default:"5s"`
	CatchUpLimit  uint64        `long:"catch-up-limit" env:"API_GATEWAY_CATCH_UP_LIMIT" description:"headers walked back before fetching by height" default:"5000"`

	ChainTxsPerPage int `long:"chain-txs-per-page" env:"API_GATEWAY_CHAIN_TXS_PER_PAGE" description:"confirmed transactions returned per address" default:"25"`
	MaxMempoolTxs   int `long:"max-mempool-txs" env:"API_GATEWAY_MAX_MEMPOOL_TXS" description:"mempool transactions returned per address" default:"50"`

	XPubGapLimit int    `long:"xpub-gap-limit" env:"API_GATEWAY_XPUB_GAP_LIMIT" description:"unused addresses ending an xpub scan" default:"20"`
	XPubPageSize uint64 `long:"xpub-page-size" env:"API_GATEWAY_XPUB_PAGE_SIZE" description:"addresses derived per xpub page" default:"100"`
	XPubWorkers  int    `long:"xpub-workers" env:"API_GATEWAY_XPUB_WORKERS" description:"concurrent stats queries per xpub page" default:"10"`
	XPubMaxPages uint64 `long:"xpub-max-pages" env:"API_GATEWAY_XPUB_MAX_PAGES" description:"pages scanned before failing, 0 disables the cap"`
	XPubQPS      int    `long:"xpub-qps" env:"API_GATEWAY_XPUB_QPS" description:"stats queries per second of one xpub scan, 0 disables throttling"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	index := headers.NewIndex(logger)

	store, err := leveldb.OpenHeaderStore(cfg.HeaderDB, metrics.NewRepository("leveldb"), cfg.Coin, cfg.Network)
	if err != nil {
		return fmt.Errorf("init header store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close header store", zap.Error(err))
		}
	}()

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init utxo rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	source, err := bitcoin.NewHeaderSource(observed.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network)))
	if err != nil {
		return err
	}

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return err
	}

	followerCfg := ingester.DefaultFollowerConfig()
	followerCfg.PollInterval = cfg.PollInterval
	followerCfg.CatchUpLimit = cfg.CatchUpLimit
	follower, err := ingester.NewHeaderFollowerService(
		index,
		source,
		store,
		metrics.NewHeaderFollower(cfg.Coin, cfg.Network),
		followerCfg,
		cfg.Coin,
		cfg.Network,
		logger,
		blockSignal,
	)
	if err != nil {
		return err
	}

	resolver, err := newResolver(cfg, index, logger)
	if err != nil {
		return err
	}
	rest, err := transport.NewRESTHandler(resolver, index, metrics.NewHTTPHandler(), logger)
	if err != nil {
		return err
	}

	followerDone := make(chan struct{})
	go func() {
		defer close(followerDone)
		// Reads keep being served from the last good chain after a halt.
		if err := follower.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("header follower stopped", zap.Error(err))
		}
	}()

	err = serve(ctx, cfg, index, rest, logger)
	<-followerDone
	return err
}

func newResolver(cfg config, index *headers.Index, logger *zap.Logger) (*address.Resolver, error) {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewRepository("clickhouse"))
	if err != nil {
		return nil, fmt.Errorf("init repository: %w", err)
	}
	converter, err := scripthash.NewConverter(cfg.Network)
	if err != nil {
		return nil, err
	}

	q := query.New(repo, repo, index, cfg.Coin, cfg.Network)
	aggregator := address.NewAggregator(q, nil, address.Config{
		ChainTxsPerPage: cfg.ChainTxsPerPage,
		MaxMempoolTxs:   cfg.MaxMempoolTxs,
	})
	scanner, err := xpub.NewScanner(
		cfg.Network,
		converter,
		q,
		aggregator,
		metrics.NewXPubScanner(cfg.Coin, cfg.Network),
		xpub.Config{
			GapLimit:         cfg.XPubGapLimit,
			PageSize:         cfg.XPubPageSize,
			Workers:          cfg.XPubWorkers,
			MaxPages:         cfg.XPubMaxPages,
			QueriesPerSecond: cfg.XPubQPS,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("init xpub scanner: %w", err)
	}
	return address.NewResolver(converter, q, aggregator, scanner, logger), nil
}

func serve(ctx context.Context, cfg config, index *headers.Index, rest http.Handler, logger *zap.Logger) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, transport.NewExplorerHandler(index))

	socket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("grpc server failed", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	gw := gwruntime.NewServeMux()
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, cfg.Addr, opts); err != nil {
		return fmt.Errorf("register explorer handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", rest)
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting HTTP server", zap.String("addr", cfg.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
