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

func MetricsListCommand(config *specs.AopDevkitConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"l", "ls"},
		Short:   "List the defined metrics.",
		PreRun: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			if config.GetApi().Token == "" {
				log.Fatal("No API token defined.")
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			name, _ := cmd.Flags().GetString("name")
			offset, _ := cmd.Flags().GetInt("offset")
			length, _ := cmd.Flags().GetInt("length")
			all, _ := cmd.Flags().GetBool("all")
			quiet, _ := cmd.Flags().GetBool("quiet")

			c, err := client.NewClient(config)
			if err != nil {
				log.Fatal(err.Error())
			}

			opts := &client.ListOptions{
				Name:   name,
				Offset: offset,
				Length: length,
			}

			var metrics []*specs.Metric
			if all {
				metrics, err = c.ListAllMetrics(opts)
			} else {
				metrics, err = c.ListMetrics(opts)
			}
			if err != nil {
				log.Fatal(err.Error())
			}

			if quiet {
				for _, m := range metrics {
					fmt.Println(m.Name)
				}
			} else {
				data, _ := yaml.Marshal(metrics)
				fmt.Println(string(data))
			}
		},
	}

	flags := cmd.Flags()
	flags.String("name", "", "Filter metrics by name.")
	flags.Int("offset", 0, "Page offset.")
	flags.Int("length", 0, "Page length.")
	flags.Bool("all", false, "Walk all the pages.")
	flags.Bool("quiet", false, "Print only the metric names.")

	return cmd
}
