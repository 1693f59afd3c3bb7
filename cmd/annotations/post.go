/*
	Copyright © 2025 AppOptics
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmdannotations

import (
	"github.com/appoptics/appoptics-devkit/pkg/client"
	"github.com/appoptics/appoptics-devkit/pkg/logger"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/spf13/cobra"
)

func AnnotationsPostCommand(config *specs.AopDevkitConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "post [stream]",
		Aliases: []string{"p", "new"},
		Short:   "Post an annotation event on a stream.",
		Long: `Creates an annotation event. If the annotation stream does not
exist, it will be created automatically.`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			if config.GetApi().Token == "" {
				log.Fatal("No API token defined.")
			}

			title, _ := cmd.Flags().GetString("title")
			if title == "" {
				log.Fatal("No title param defined.")
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.GetDefaultLogger()

			title, _ := cmd.Flags().GetString("title")
			source, _ := cmd.Flags().GetString("source")
			description, _ := cmd.Flags().GetString("description")
			startTime, _ := cmd.Flags().GetInt64("start-time")
			endTime, _ := cmd.Flags().GetInt64("end-time")

			c, err := client.NewClient(config)
			if err != nil {
				log.Fatal(err.Error())
			}

			event := &specs.AnnotationEvent{
				Title:       title,
				Source:      source,
				Description: description,
				StartTime:   startTime,
				EndTime:     endTime,
			}

			_, err = c.PostAnnotationEvent(args[0], event)
			if err != nil {
				log.Fatal(err.Error())
			}

			log.Info(":party_popper:Annotation event posted.")
		},
	}

	flags := cmd.Flags()
	flags.String("title", "", "Title of the event.")
	flags.String("source", "", "Source of the event.")
	flags.String("description", "", "Description of the event.")
	flags.Int64("start-time", 0, "Unix time of the event start.")
	flags.Int64("end-time", 0, "Unix time of the event end.")

	return cmd
}
