/*
	Copyright © 2025 AppOptics
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmd

import (
	cmdalerts "github.com/appoptics/appoptics-devkit/cmd/alerts"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/spf13/cobra"
)

func alertsCmdCommand(config *specs.AopDevkitConfig) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "alerts",
		Aliases: []string{"al"},
		Short:   "Alerts commands.",
		Long:    `Manage alerts of the AppOptics service.`,
	}

	cmd.AddCommand(
		cmdalerts.AlertsListCommand(config),
		cmdalerts.AlertsGetCommand(config),
		cmdalerts.AlertsDeleteCommand(config),
	)

	return cmd
}
