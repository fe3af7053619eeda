package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxviazov/portal-tools/internal/cart"
	"github.com/maxviazov/portal-tools/internal/config"
	"github.com/maxviazov/portal-tools/internal/logger"
	"github.com/maxviazov/portal-tools/internal/portal"
	"github.com/maxviazov/portal-tools/pkg/exitcode"
	"github.com/maxviazov/portal-tools/pkg/progress"
)

var rootCmd = &cobra.Command{
	Use:           "cartmaker",
	Short:         "Bulk-create named cart records on the portal",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().String("key", "default", "keyfile entry to authenticate with")
	rootCmd.Flags().String("keyfile", "keypairs.json", "path to the JSON keyfile")
	rootCmd.Flags().String("name", "bulk cart", "name prefix; carts are numbered from 1")
	rootCmd.Flags().Int("count", 1, "how many carts to create")
	rootCmd.Flags().Bool("debug", false, "log request URLs")
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	target, _ := flags.GetString("key")
	keyfile, _ := flags.GetString("keyfile")
	prefix, _ := flags.GetString("name")
	count, _ := flags.GetInt("count")
	debug, _ := flags.GetBool("debug")

	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	logg, err := logger.New(&logger.Config{ToolName: "cartmaker", Debug: debug})
	if err != nil {
		return err
	}

	creds, err := config.LoadKeyfile(keyfile, target)
	if err != nil {
		return err
	}
	if !creds.Authenticated() {
		return fmt.Errorf("keyfile entry %q has no key pair; cart creation requires auth", target)
	}

	client := portal.New(creds, 0, &logg)

	var bar progress.Bar = progress.NewTerminal("creating carts")
	if debug {
		bar = progress.Noop{}
	}

	created := cart.New(client, bar, &logg).Run(cmd.Context(), prefix, count)
	fmt.Printf("Created %d of %d carts\n", created, count)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		code, kind := exitcode.FromError(err)
		fmt.Fprintf(os.Stderr, "cartmaker: %s: %v\n", kind, err)
		os.Exit(code)
	}
}
