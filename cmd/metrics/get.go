/*
	Copyright © 2025 AppOptics
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmdmetrics

import (
	"fmt"

	"github.com/appoptics/appoptics-devkit/pkg/client"
	"github.com/appoptics/appoptics-devkit/pkg/logger"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func MetricsGetCommand(config *specs.AopDevkitConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "get [metric]",
		Aliases: []string{"g"},
		Short:   "Get a metric definition, optionally with measurements.",
		Args:    cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			if config.GetApi().Token == "" {
				log.Fatal("No API token defined.")
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			startTime, _ := cmd.Flags().GetInt64("start-time")
			endTime, _ := cmd.Flags().GetInt64("end-time")
			duration, _ := cmd.Flags().GetInt64("duration")
			resolution, _ := cmd.Flags().GetInt("resolution")
			withMeasurements, _ := cmd.Flags().GetBool("measurements")

			c, err := client.NewClient(config)
			if err != nil {
				log.Fatal(err.Error())
			}

			metric, err := c.GetMetric(args[0])
			if err != nil {
				log.Fatal(err.Error())
			}

			data, _ := metric.Yaml()
			fmt.Println(string(data))

			if withMeasurements {
				q := &specs.MeasurementsQuery{
					StartTime:  startTime,
					EndTime:    endTime,
					Duration:   duration,
					Resolution: resolution,
				}

				measurements, err := c.GetMeasurements(args[0], q)
				if err != nil {
					log.Fatal(err.Error())
				}

				mdata, _ := yaml.Marshal(measurements)
				fmt.Println(string(mdata))
			}
		},
	}

	flags := cmd.Flags()
	flags.Bool("measurements", false, "Retrieve also the metric measurements.")
	flags.Int64("start-time", 0, "Unix time of the first sample.")
	flags.Int64("end-time", 0, "Unix time of the last sample.")
	flags.Int64("duration", 0, "Interval in seconds, alternative to start-time.")
	flags.Int("resolution", 0, "Resolution of the samples in seconds.")

	return cmd
}
