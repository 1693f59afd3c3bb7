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
	"gopkg.in/yaml.v3"
)

func AlertsListCommand(config *specs.AopDevkitConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"l", "ls"},
		Short:   "List the defined alerts.",
		PreRun: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			if config.GetApi().Token == "" {
				log.Fatal("No API token defined.")
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			quiet, _ := cmd.Flags().GetBool("quiet")
			activeOnly, _ := cmd.Flags().GetBool("active")

			c, err := client.NewClient(config)
			if err != nil {
				log.Fatal(err.Error())
			}

			alerts, err := c.ListAlerts(nil)
			if err != nil {
				log.Fatal(err.Error())
			}

			if activeOnly {
				active := []*specs.Alert{}
				for _, a := range alerts {
					if a.IsActive() {
						active = append(active, a)
					}
				}
				alerts = active
			}

			if quiet {
				for _, a := range alerts {
					fmt.Println(a.Name)
				}
			} else {
				data, _ := yaml.Marshal(alerts)
				fmt.Println(string(data))
			}
		},
	}

	flags := cmd.Flags()
	flags.Bool("active", false, "Show only the active alerts.")
	flags.Bool("quiet", false, "Print only the alert names.")

	return cmd
}
