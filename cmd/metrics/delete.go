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

func MetricsDeleteCommand(config *specs.AopDevkitConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "delete [metric...]",
		Aliases: []string{"d", "rm"},
		Short:   "Delete one or more metrics.",
		Args:    cobra.MinimumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			if config.GetApi().Token == "" {
				log.Fatal("No API token defined.")
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			c, err := client.NewClient(config)
			if err != nil {
				log.Fatal(err.Error())
			}

			if len(args) == 1 {
				err = c.DeleteMetric(args[0])
			} else {
				err = c.DeleteMetrics(args)
			}
			if err != nil {
				log.Fatal(err.Error())
			}

			log.Info(":party_popper:Metrics deleted.")
		},
	}

	return cmd
}
