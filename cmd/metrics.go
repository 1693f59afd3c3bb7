/*
	Copyright © 2025 AppOptics
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmd

import (
	cmdmetrics "github.com/appoptics/appoptics-devkit/cmd/metrics"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/spf13/cobra"
)

func metricsCmdCommand(config *specs.AopDevkitConfig) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "metrics",
		Aliases: []string{"m"},
		Short:   "Metrics commands.",
		Long:    `Manage metrics and measurements of the AppOptics service.`,
	}

	cmd.AddCommand(
		cmdmetrics.MetricsListCommand(config),
		cmdmetrics.MetricsGetCommand(config),
		cmdmetrics.MetricsCreateCommand(config),
		cmdmetrics.MetricsSubmitCommand(config),
		cmdmetrics.MetricsDeleteCommand(config),
	)

	return cmd
}
