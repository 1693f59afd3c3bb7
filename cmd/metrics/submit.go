/*
	Copyright © 2025 AppOptics
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmdmetrics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/appoptics/appoptics-devkit/pkg/client"
	"github.com/appoptics/appoptics-devkit/pkg/logger"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/spf13/cobra"
)

func parseValue(v string) (float64, error) {
	ans, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid measurement value %s", v)
	}
	return ans, nil
}

func parseTags(tags []string) map[string]string {
	ans := make(map[string]string, len(tags))
	for _, t := range tags {
		words := strings.SplitN(t, "=", 2)
		if len(words) != 2 {
			continue
		}
		ans[words[0]] = words[1]
	}
	return ans
}

func MetricsSubmitCommand(config *specs.AopDevkitConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "submit [metric] [value]",
		Aliases: []string{"s", "measure"},
		Short:   "Submit a measurement for a metric.",
		Args:    cobra.ExactArgs(2),
		PreRun: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			if config.GetApi().Token == "" {
				log.Fatal("No API token defined.")
			}

			tags, _ := cmd.Flags().GetStringSlice("tag")
			if len(tags) == 0 && len(config.GetApi().Tags) == 0 {
				log.Fatal("At least one tag is needed.")
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			tags, _ := cmd.Flags().GetStringSlice("tag")
			inherit, _ := cmd.Flags().GetBool("inherit-tags")
			mtime, _ := cmd.Flags().GetInt64("time")

			value, err := parseValue(args[1])
			if err != nil {
				log.Fatal(err.Error())
			}

			c, err := client.NewClient(config)
			if err != nil {
				log.Fatal(err.Error())
			}

			opts := &specs.MeasureOptions{
				Time:        mtime,
				Tags:        parseTags(tags),
				InheritTags: inherit,
			}

			err = c.SubmitMeasurement(args[0], value, opts)
			if err != nil {
				log.Fatal(err.Error())
			}

			log.Info(":party_popper:Measurement submitted.")
		},
	}

	flags := cmd.Flags()
	flags.StringSlice("tag", []string{}, "Measurement tag in the format key=value.")
	flags.Bool("inherit-tags", false, "Merge the measure tags with the configured top-level tags.")
	flags.Int64("time", 0, "Unix time of the measurement.")

	return cmd
}
