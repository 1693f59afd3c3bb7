/*
	Copyright © 2025 AppOptics
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmdalerts

import (
	"fmt"

	"github.com/appoptics/appoptics-devkit/pkg/client"
	"github.com/appoptics/appoptics-devkit/pkg/logger"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/spf13/cobra"
)

func AlertsGetCommand(config *specs.AopDevkitConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "get [alert]",
		Aliases: []string{"g"},
		Short:   "Get an alert by name.",
		Args:    cobra.ExactArgs(1),
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

			alert, err := c.GetAlert(args[0])
			if err != nil {
				log.Fatal(err.Error())
			}
			if alert == nil {
				log.Fatal("Alert " + args[0] + " not found.")
			}

			data, _ := alert.Yaml()
			fmt.Println(string(data))
		},
	}

	return cmd
}
