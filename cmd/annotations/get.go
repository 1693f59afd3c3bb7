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

func AnnotationsGetCommand(config *specs.AopDevkitConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "get [stream]",
		Aliases: []string{"g"},
		Short:   "Get an annotation stream, optionally with its events.",
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
			eventId, _ := cmd.Flags().GetInt("event")

			c, err := client.NewClient(config)
			if err != nil {
				log.Fatal(err.Error())
			}

			if eventId > 0 {
				event, err := c.GetAnnotationEvent(args[0], eventId)
				if err != nil {
					log.Fatal(err.Error())
				}

				data, _ := yaml.Marshal(event)
				fmt.Println(string(data))
				return
			}

			stream, err := c.GetAnnotationStream(args[0], startTime, endTime)
			if err != nil {
				log.Fatal(err.Error())
			}

			data, _ := yaml.Marshal(stream)
			fmt.Println(string(data))
		},
	}

	flags := cmd.Flags()
	flags.Int64("start-time", 0, "Retrieve events from this unix time.")
	flags.Int64("end-time", 0, "Retrieve events until this unix time.")
	flags.Int("event", 0, "Retrieve a single event by id.")

	return cmd
}
