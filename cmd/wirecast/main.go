// Command wirecast is a developer utility around the wirecast decode core:
// it decodes payload files against the schema catalog and resolves the
// gateway descriptor.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	wirecast "github.com/lumachat/wirecast"
	"github.com/lumachat/wirecast/gateway"
	"github.com/lumachat/wirecast/model"
)

var (
	cfgFile string
	verbose bool
	cfg     *Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wirecast",
		Short: "Decode Luma API payloads and resolve the gateway descriptor",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = loadConfig(cfgFile)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Verbose = true
			}
			wirecast.SetLogger(newLogger(cfg.Verbose))
			if cfg.AllowList != "" {
				f, err := os.Open(cfg.AllowList)
				if err != nil {
					return fmt.Errorf("opening allow-list: %w", err)
				}
				defer f.Close()
				if _, err := wirecast.AllowFromYAML(f); err != nil {
					return err
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./wirecast.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(newDecodeCmd(), newGatewayCmd())
	return rootCmd
}

func newDecodeCmd() *cobra.Command {
	var schemaName string
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a JSON payload against a catalog schema",
		Long: `Decode reads a JSON payload (from a file or stdin), normalizes its keys,
decodes it with the named schema, and prints the typed result.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := model.Lookup(schemaName)
			if err != nil {
				return fmt.Errorf("%w (have: %v)", err, model.Names())
			}
			data, err := readInput(args)
			if err != nil {
				return err
			}
			var payload map[string]any
			if err := json.Unmarshal(data, &payload); err != nil {
				return fmt.Errorf("parsing payload: %w", err)
			}
			raw := wirecast.NormalizeKeys(payload).(map[wirecast.Symbol]any)
			ent, err := s.Decode(raw)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(ent.Plain(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemaName, "schema", "s", "", "schema name (required)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func newGatewayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gateway",
		Short: "Fetch and print the gateway descriptor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Token == "" {
				return fmt.Errorf("no token configured (set token in wirecast.yaml or WIRECAST_TOKEN)")
			}
			req := gateway.NewHTTPRequester(cfg.APIURL, cfg.Token,
				gateway.WithLogger(newLogger(cfg.Verbose)))
			d, err := gateway.NewCache(req).Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "url:    %s\nshards: %d\n", d.URL, d.RecommendedShardCount)
			return nil
		},
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

// newLogger builds the CLI's zap logger: console output on stderr, debug
// level when verbose.
func newLogger(verbose bool) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := config.Build()
	if err != nil {
		log.Fatal(err)
	}
	return logger
}
