package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxviazov/portal-tools/internal/config"
	"github.com/maxviazov/portal-tools/internal/logger"
	"github.com/maxviazov/portal-tools/internal/portal"
	"github.com/maxviazov/portal-tools/internal/report"
	"github.com/maxviazov/portal-tools/pkg/exitcode"
	"github.com/maxviazov/portal-tools/pkg/progress"
)

var rootCmd = &cobra.Command{
	Use:   "reportlen",
	Short: "Report records whose field collection length falls within a range",
	Long: `reportlen pages through a portal report and prints every record whose
field collection length lies inside the inclusive [min, max] bounds. The
filter applies to the parent of the requested field path: --field files.@id
measures the length of the files collection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().String("key", "default", "keyfile entry to authenticate with")
	rootCmd.Flags().String("keyfile", "keypairs.json", "path to the JSON keyfile")
	rootCmd.Flags().String("type", "Experiment", "record type to report on")
	rootCmd.Flags().String("field", "files.@id", "dotted field path to measure")
	rootCmd.Flags().String("filter", "", "extra query expression appended to the report URL")
	rootCmd.Flags().Int("min", 1, "inclusive lower bound on the collection length")
	rootCmd.Flags().Int("max", 0, "inclusive upper bound; 0 means unbounded")
	rootCmd.Flags().Bool("debug", false, "log request URLs and response metadata")
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	target, _ := flags.GetString("key")
	keyfile, _ := flags.GetString("keyfile")
	recordType, _ := flags.GetString("type")
	field, _ := flags.GetString("field")
	filter, _ := flags.GetString("filter")
	min, _ := flags.GetInt("min")
	max, _ := flags.GetInt("max")
	debug, _ := flags.GetBool("debug")

	logg, err := logger.New(&logger.Config{ToolName: "reportlen", Debug: debug})
	if err != nil {
		return err
	}

	creds, err := config.LoadKeyfile(keyfile, target)
	if err != nil {
		return err
	}

	client := portal.New(creds, 0, &logg)

	// In debug runs the bar would interleave with log lines, so drop it.
	var bar progress.Bar = progress.NewTerminal("fetching report")
	if debug {
		bar = progress.Noop{}
	}

	matches, err := report.New(client, bar, &logg).Run(cmd.Context(), report.Request{
		Type:   recordType,
		Field:  field,
		Filter: filter,
		Min:    min,
		Max:    max,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Total: %d\n", len(matches))
	for _, m := range matches {
		fmt.Println(m)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		code, kind := exitcode.FromError(err)
		fmt.Fprintf(os.Stderr, "reportlen: %s: %v\n", kind, err)
		os.Exit(code)
	}
}
