// Command qtxsim runs scripted two-phase-commit scenarios through the qtx coordinator and prints the participant
// call trace together with the final transaction status.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	qtx "github.com/qbixus/qtx-xa"
	"github.com/qbixus/qtx-xa/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCommand(viper.New()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:          "qtxsim",
		Short:        "Run scripted two-phase-commit scenarios",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v)
		},
	}
	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "console", "log format: json or console")
	flags.String("log-output", "stderr", "log output: stderr, stdout or a file path")
	flags.String("converter", "goroutine", "blocking participant converter: goroutine or inline")
	bindFlags(v, flags)

	root.AddCommand(newRunCommand(v))
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		_ = v.BindPFlag(flag.Name, flag)
	})
	v.SetEnvPrefix("QTXSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func loadConfig(v *viper.Viper) error {
	path := strings.TrimSpace(v.GetString("config"))
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func newRunCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run one scenario and print the outcome as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Config{
				Level:      v.GetString("log-level"),
				Format:     v.GetString("log-format"),
				OutputFile: v.GetString("log-output"),
			})
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			conv, err := converterByName(v.GetString("converter"))
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			sc, err := LoadScenario(f)
			if err != nil {
				return err
			}

			res, err := Run(cmd.Context(), sc, qtx.WithLogger(log.Named("tx")), qtx.WithConverter(conv))
			if err != nil {
				return err
			}
			log.Debug("qtxsim.run.done", zap.String("status", res.Status))
			return writeResult(cmd.OutOrStdout(), res)
		},
	}
}

func converterByName(name string) (qtx.ResourceConverter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "goroutine":
		return qtx.GoroutineConverter, nil
	case "inline":
		return qtx.InlineConverter, nil
	}
	return nil, fmt.Errorf("unknown converter %q", name)
}

func writeResult(w io.Writer, res Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}
