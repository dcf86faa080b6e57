package client

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	transports "github.com/rzbill/dsws/internal/cmd/client/transports"
	"github.com/rzbill/dsws/internal/config"
	"github.com/rzbill/dsws/internal/eventfilter"
	"github.com/rzbill/dsws/pkg/id"
	logpkg "github.com/rzbill/dsws/pkg/log"
)

// Options carries dependencies that do not come from flags.
type Options struct {
	// Logger overrides the logger built from configuration.
	Logger logpkg.Logger
	// RedirectGRPCLog routes grpc-go's internal logging into the logger.
	// Only the binary sets it; grpclog is process global.
	RedirectGRPCLog bool
	// DialOptions are appended to the transport's defaults.
	DialOptions []grpc.DialOption
}

// NewRoot constructs the dsws root command. Exactly one primary command
// flag is required per invocation; --clear-unknown may accompany any of
// them.
func NewRoot(opts Options) *cobra.Command {
	defaults := config.Default()
	root := &cobra.Command{
		Use:   "dsws",
		Short: "Query and manage the dsws telemetry EventServer",
		Long: "dsws issues one read or write operation against a telemetry EventServer " +
			"over gRPC and prints the result as plain text.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := root.Flags()
	f.StringP("server", "S", defaults.Server, "Server name")
	f.IntP("port", "P", defaults.Port, "Server port")
	f.String("config", "", "Config file (JSON or YAML; default "+config.DefaultPath()+")")
	f.String("filter", "", "CEL expression selecting events to print, e.g. 'value > 20.0'")
	f.String("log-level", "", "Log level: debug|info|warn|error")
	f.String("log-format", "", "Log format: text|json")
	registerCommandFlags(f)

	names := primaryFlagNames()
	root.MarkFlagsOneRequired(names...)
	root.MarkFlagsMutuallyExclusive(names...)
	return root
}

func run(cmd *cobra.Command, opts Options) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger := opts.Logger
	if logger == nil {
		logger, err = newLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}
	if opts.RedirectGRPCLog {
		logpkg.RedirectGRPCLog(logger)
	}
	inv := id.New()
	logger = logger.With(logpkg.Str(logpkg.InvocationKey, inv.String()))

	sel, err := SelectCommand(cmd.Flags())
	if err != nil {
		return err
	}
	expr, _ := cmd.Flags().GetString("filter")
	filter, err := eventfilter.Compile(expr)
	if err != nil {
		return invalidArgument("invalid --filter: %v", err)
	}
	if filter.Enabled() {
		logger.Debug("event filter active", logpkg.Str("filter", expr))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger.Debug("connecting", logpkg.Str("target", cfg.Target()))
	tr, err := transports.Dial(ctx, transports.Options{
		Target:           cfg.Target(),
		KeepaliveTimeout: cfg.KeepaliveTimeout(),
		DialOptions:      opts.DialOptions,
		Logger:           logger,
	})
	if err != nil {
		return err
	}
	defer func() { _ = tr.Close() }()

	x := &Executor{Transport: tr, Out: cmd.OutOrStdout(), Filter: filter, Logger: logger}
	err = x.Run(ctx, sel)
	elapsed := logpkg.Duration("elapsed", time.Since(inv.Time()))
	if err != nil {
		logger.Debug("command failed", elapsed, logpkg.Err(err))
		return err
	}
	logger.Debug("command complete", elapsed)
	return nil
}

// resolveConfig applies defaults, the config file, DSWS_* variables and
// finally explicitly set flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	path, _ := f.GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, invalidArgument("load config: %v", err)
	}
	if err := config.FromEnv(&cfg); err != nil {
		return config.Config{}, invalidArgument("%v", err)
	}

	if f.Changed("server") {
		cfg.Server, _ = f.GetString("server")
	}
	if f.Changed("port") {
		cfg.Port, _ = f.GetInt("port")
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
	if f.Changed("log-format") {
		cfg.LogFormat, _ = f.GetString("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, invalidArgument("%v", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) (logpkg.Logger, error) {
	level, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, invalidArgument("%v", err)
	}
	var formatter logpkg.Formatter
	switch strings.ToLower(cfg.LogFormat) {
	case "", "text":
		formatter = &logpkg.TextFormatter{}
	case "json":
		formatter = &logpkg.JSONFormatter{}
	default:
		return nil, invalidArgument("invalid log format %q; use text|json", cfg.LogFormat)
	}
	return logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewWriterOutput(w)),
	).WithComponent("client"), nil
}
