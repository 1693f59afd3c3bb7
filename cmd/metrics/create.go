/*
	Copyright © 2025 AppOptics
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmdmetrics

import (
	"github.com/appoptics/appoptics-devkit/pkg/client"
	"github.com/appoptics/appoptics-devkit/pkg/logger"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/spf13/cobra"
)

func MetricsCreateCommand(config *specs.AopDevkitConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "create [metric]",
		Aliases: []string{"c", "new"},
		Short:   "Create or update a metric definition.",
		Args:    cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			if config.GetApi().Token == "" {
				log.Fatal("No API token defined.")
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			mtype, _ := cmd.Flags().GetString("type")
			displayName, _ := cmd.Flags().GetString("display-name")
			description, _ := cmd.Flags().GetString("description")
			period, _ := cmd.Flags().GetInt("period")
			composite, _ := cmd.Flags().GetString("composite")

			c, err := client.NewClient(config)
			if err != nil {
				log.Fatal(err.Error())
			}

			if composite != "" {
				props := map[string]interface{}{}
				if displayName != "" {
					props["display_name"] = displayName
				}
				err = c.CreateComposite(args[0], composite, props)
			} else {
				metric := specs.NewMetric(args[0], mtype)
				metric.DisplayName = displayName
				metric.Description = description
				metric.Period = period

				err = c.CreateMetric(metric)
			}
			if err != nil {
				log.Fatal(err.Error())
			}

			log.Info(":party_popper:Metric", args[0], "created.")
		},
	}

	flags := cmd.Flags()
	flags.String("type", "gauge", "Metric type.")
	flags.String("display-name", "", "Metric display name.")
	flags.String("description", "", "Metric description.")
	flags.Int("period", 0, "Expected submission period in seconds.")
	flags.String("composite", "", "Composite expression. Implies a composite metric.")

	return cmd
}
