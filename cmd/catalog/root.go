package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"librarycatalog/internal/catalog"
	"librarycatalog/internal/config"
	"librarycatalog/internal/seed"
	"librarycatalog/internal/shell"
)

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Interactive in-memory book catalog",
		Long: `catalog starts an interactive session over an in-memory book catalog.
Books can be added, searched by title or author, removed and listed.
Nothing is persisted; use --seed to start from a YAML file.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			return runSession(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	d := config.Defaults()
	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	flags := cmd.Flags()
	flags.String("format", d.Format, "output format: text or json")
	flags.String("prompt", d.Prompt, "prompt shown before each command in text mode")
	flags.String("seed", d.Seed, "YAML seed file loaded before the session starts")
	flags.Int("page-size", d.PageSize, "default page size for list (1-100)")
	flags.BoolP("verbose", "v", d.Verbose, "log diagnostics to stderr")

	// Bind flags to viper
	_ = v.BindPFlag("format", flags.Lookup("format"))
	_ = v.BindPFlag("prompt", flags.Lookup("prompt"))
	_ = v.BindPFlag("seed", flags.Lookup("seed"))
	_ = v.BindPFlag("page_size", flags.Lookup("page-size"))
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))

	cmd.AddCommand(newSeedCmd())
	return cmd
}

func runSession(ctx context.Context, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	logOut := io.Discard
	if cfg.Verbose {
		logOut = stderr
	}
	logger := log.New(logOut, "", log.LstdFlags)

	c := catalog.New(logOut)
	if cfg.Seed != "" {
		n, err := seed.LoadFile(c, cfg.Seed)
		if err != nil {
			return fmt.Errorf("load seed: %w", err)
		}
		logger.Printf("seed loaded path=%s books=%d", cfg.Seed, n)
	}

	format := shell.Format(cfg.Format)
	prompt := cfg.Prompt
	if format == shell.FormatJSON {
		// keep stdout a pure JSON stream
		c.SetOutput(stderr)
		prompt = ""
	} else {
		c.SetOutput(stdout)
	}

	sh := shell.New(c, shell.Options{
		Out:      stdout,
		Logger:   logger,
		Prompt:   prompt,
		Format:   format,
		PageSize: cfg.PageSize,
	})

	logger.Printf("session start format=%s page_size=%d books=%d", cfg.Format, cfg.PageSize, c.Len())
	err := sh.Run(ctx, stdin)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
