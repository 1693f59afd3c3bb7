/*
	Copyright © 2025 AppOptics
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmdannotations

import (
	"fmt"

	"github.com/appoptics/appoptics-devkit/pkg/client"
	"github.com/appoptics/appoptics-devkit/pkg/logger"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func AnnotationsListCommand(config *specs.AopDevkitConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "list",
		Aliases: []string{"l", "ls"},
		Short:   "List the annotation streams.",
		PreRun: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			if config.GetApi().Token == "" {
				log.Fatal("No API token defined.")
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			quiet, _ := cmd.Flags().GetBool("quiet")

			c, err := client.NewClient(config)
			if err != nil {
				log.Fatal(err.Error())
			}

			streams, err := c.ListAnnotationStreams(nil)
			if err != nil {
				log.Fatal(err.Error())
			}

			if quiet {
				for _, s := range streams {
					fmt.Println(s.Name)
				}
			} else {
				data, _ := yaml.Marshal(streams)
				fmt.Println(string(data))
			}
		},
	}

	flags := cmd.Flags()
	flags.Bool("quiet", false, "Print only the stream names.")

	return cmd
}
