package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

var loglevel string

func setLogLevel(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(loglevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.WithFields(log.Fields{
		"version":   version,
		"commit":    commit,
		"buildTime": date,
	}).Infof("Running %s", cmd.CommandPath())
	return nil
}

func versionString(version, commit, date string) string {
	var result = fmt.Sprintf("version: %s", version)
	if commit != "" {
		result = fmt.Sprintf("%s\ncommit: %s", result, commit)
	}
	if date != "" {
		result = fmt.Sprintf("%s\nbuilt at: %s", result, date)
	}
	return result
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:               "pairsamtools",
		Short:             "Process pairsam files",
		Long:              "pairsamtools - process pairsam files of paired sequence alignments",
		Version:           versionString(version, commit, date),
		PersistentPreRunE: setLogLevel,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	rootCmd.PersistentFlags().StringVarP(&loglevel, "loglevel", "", "warn", "logging level")
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "== %s ==\n" .}}{{end}}{{printf "%s\n" .Version}}`)
	rootCmd.AddCommand(newMarkAsDupCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
