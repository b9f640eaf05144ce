package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NilFoundation/suigql/suigql/client/rpc"
	"github.com/NilFoundation/suigql/suigql/common/check"
	"github.com/NilFoundation/suigql/suigql/common/logging"
	"github.com/NilFoundation/suigql/suigql/services/graphql/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultEndpoint = "https://fullnode.mainnet.sui.io:443"

	endpointFlag   = "endpoint"
	logLevelFlag   = "log-level"
	retriesFlag    = "retries"
	retryDelayFlag = "retry-delay"
	timeoutFlag    = "timeout"
	metricsFlag    = "metrics"
)

type Config struct {
	Endpoint   string
	LogLevel   string
	Retries    uint32
	RetryDelay time.Duration
	Timeout    time.Duration
	Metrics    bool
}

type RootCommand struct {
	baseCmd *cobra.Command
	config  Config
	cfgFile string
	viper   *viper.Viper

	provider server.DataProvider
	registry *prometheus.Registry
	metrics  *server.Metrics
}

var logger = logging.NewLogger("suigql-cli")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if err := newRootCommand().baseCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *RootCommand {
	rc := &RootCommand{viper: viper.New()}
	rc.baseCmd = &cobra.Command{
		Use:                "suigql",
		Short:              "Query a Sui full node through the GraphQL data provider",
		PersistentPreRunE:  rc.preRun,
		PersistentPostRunE: rc.postRun,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}

	flags := rc.baseCmd.PersistentFlags()
	flags.StringVarP(&rc.cfgFile, "config", "c", "", "config file (any format supported by viper)")
	flags.StringVar(&rc.config.Endpoint, endpointFlag, defaultEndpoint, "full node JSON-RPC endpoint")
	flags.StringVarP(&rc.config.LogLevel, logLevelFlag, "l", "warn", "log level: trace|debug|info|warn|error")
	flags.Uint32Var(&rc.config.Retries, retriesFlag, 3, "attempts per request on transport failures")
	flags.DurationVar(&rc.config.RetryDelay, retryDelayFlag, 200*time.Millisecond, "delay before the first retry")
	flags.DurationVar(&rc.config.Timeout, timeoutFlag, 30*time.Second, "timeout of a single request, 0 disables it")
	flags.BoolVar(&rc.config.Metrics, metricsFlag, false, "print provider metrics to stderr on exit")

	rc.baseCmd.AddCommand(
		rc.objectCommand(),
		rc.ownedCommand(),
		rc.balanceCommand(),
		rc.transactionCommand(),
		rc.chainIdCommand(),
		rc.protocolConfigCommand(),
		addressCommand(),
	)
	return rc
}

func (rc *RootCommand) preRun(cmd *cobra.Command, _ []string) error {
	if rc.cfgFile != "" {
		rc.viper.SetConfigFile(rc.cfgFile)
		if err := rc.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %q: %w", rc.cfgFile, err)
		}
	}

	// Values from the config file apply to the flags not given on the command line.
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !rc.viper.IsSet(f.Name) {
			return
		}
		check.PanicIfErr(f.Value.Set(rc.viper.GetString(f.Name)))
	})

	if err := logging.TrySetupGlobalLevel(rc.config.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %w", logLevelFlag, err)
	}
	logging.ApplyComponentsFilterEnv()

	if rc.config.Metrics {
		rc.registry = prometheus.NewRegistry()
		metrics, err := server.NewMetrics(rc.registry)
		if err != nil {
			return err
		}
		rc.metrics = metrics
	}
	return nil
}

func (rc *RootCommand) postRun(cmd *cobra.Command, _ []string) error {
	if rc.registry == nil {
		return nil
	}

	families, err := rc.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.ErrOrStderr(), family); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

// Provider lazily connects to the configured endpoint.
func (rc *RootCommand) Provider() server.DataProvider {
	if rc.provider != nil {
		return rc.provider
	}

	opts := []rpc.Option{rpc.WithTimeout(rc.config.Timeout)}
	if rc.config.Retries > 1 {
		opts = append(opts, rpc.WithRetry(rc.config.Retries, rc.config.RetryDelay, 16*rc.config.RetryDelay))
	}
	client := rpc.NewClient(rc.config.Endpoint, logging.NewLogger("rpc-client"), opts...)

	logger.Debug().Str(logging.FieldUrl, rc.config.Endpoint).Msg("using full node")
	var providerOpts []server.Option
	if rc.metrics != nil {
		providerOpts = append(providerOpts, server.WithMetrics(rc.metrics))
	}
	rc.provider = server.NewRpcDataProvider(client, providerOpts...)
	return rc.provider
}
