package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/guigolab/pairsamtools"
	"github.com/guigolab/pairsamtools/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type markAsDupOptions struct {
	output, stats       string
	cpu, maxBuf         int
	columnSep, entrySep string
}

// unescape decodes Go escape sequences such as \v or \x04 in a separator flag.
func unescape(s string) (string, error) {
	u, err := strconv.Unquote(`"` + strings.Replace(s, `"`, `\"`, -1) + `"`)
	if err != nil {
		return "", errors.Errorf("invalid separator %q", s)
	}
	return u, nil
}

func (o *markAsDupOptions) config(commandLine []string) (*config.Config, error) {
	columnSep, err := unescape(o.columnSep)
	if err != nil {
		return nil, err
	}
	entrySep, err := unescape(o.entrySep)
	if err != nil {
		return nil, err
	}
	layout, err := config.NewLayout(config.DefaultColumns, columnSep, entrySep)
	if err != nil {
		return nil, err
	}
	prog := &config.Program{
		ID:          pairsamtools.UtilName,
		Name:        pairsamtools.UtilName,
		Version:     version,
		CommandLine: strings.Join(commandLine, " "),
	}
	return config.NewConfig(o.cpu, o.maxBuf, layout, prog), nil
}

func newMarkAsDupCmd() *cobra.Command {
	o := &markAsDupOptions{}
	c := &cobra.Command{
		Use:   "markasdup [PAIRSAM_PATH]",
		Short: "Tag all pairsam entries with a duplicate tag",
		Long: `Tag all pairsam entries with a duplicate tag.

PAIRSAM_PATH: input .pairsam file. If the path ends with .gz, the input is
gzip-decompressed. By default, the input is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.config(os.Args)
			if err != nil {
				return err
			}
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			log.Infof("Using %d worker(s)", cfg.Cpu)
			return pairsamtools.MarkAsDupFile(input, o.output, o.stats, cfg)
		},
	}
	c.Flags().StringVarP(&o.output, "output", "o", "", "output .pairsam file. If the path ends with .gz, the output is bgzip-compressed. By default, the output is printed into stdout.")
	c.Flags().StringVarP(&o.stats, "stats", "s", "", "output file for pair statistics in JSON format")
	c.Flags().IntVarP(&o.cpu, "cpu", "c", 1, "number of cpus to be used")
	c.Flags().IntVarP(&o.maxBuf, "max-buf", "", 10000, "maximum number of lines per worker batch")
	c.Flags().StringVarP(&o.columnSep, "column-sep", "", `\v`, "pairsam column separator")
	c.Flags().StringVarP(&o.entrySep, "entry-sep", "", `\x04`, "separator of multiple sam entries within a sam column")
	return c
}
