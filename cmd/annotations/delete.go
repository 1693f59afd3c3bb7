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

func AnnotationsDeleteCommand(config *specs.AopDevkitConfig) *cobra.Command {

	var cmd = &cobra.Command{
		Use:     "delete [stream]",
		Aliases: []string{"d", "rm"},
		Short:   "Delete an annotation stream.",
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

			err = c.DeleteAnnotationStream(args[0])
			if err != nil {
				log.Fatal(err.Error())
			}

			log.Info(":party_popper:Annotation stream deleted.")
		},
	}

	return cmd
}
