package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/calebcase/did"
	"github.com/calebcase/did/table"
)

var (
	rootCmd = &cobra.Command{
		Use:   "retrieve FILE INTERVAL VARS",
		Short: "Print the values stored in a DID file",
		Long: "retrieve decodes a DID file of 48-bit reals into a semicolon separated table.\n" +
			"INTERVAL is the data interval in minutes (10, 15 or 30) and VARS the number of variables per row.",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := parseSchema(args[1], args[2])
			if err != nil {
				return err
			}
			schema.Strict = strict

			_, err = did.Retrieve(cmd.OutOrStdout(), args[0], schema)
			return err
		},
	}

	convertCmd = &cobra.Command{
		Use:   "convert HEX...",
		Short: "Decode 48-bit reals written in hex",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				value, err := did.Convert(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(value, 'g', -1, 64))
			}
			return nil
		},
	}

	strict  bool
	verbose bool
)

func init() {
	rootCmd.Flags().BoolVar(&strict, "strict", false, "fail when the file ends partway through a row")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(convertCmd)
}

func parseSchema(interval, vars string) (schema table.Schema, err error) {
	schema.Interval, err = strconv.Atoi(interval)
	if err != nil {
		return schema, table.UnsupportedInterval.New("interval %q: %v", interval, err)
	}

	schema.Vars, err = strconv.Atoi(vars)
	if err != nil {
		return schema, table.InvalidConfiguration.New("vars %q: %v", vars, err)
	}

	return schema, schema.Validate()
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}
