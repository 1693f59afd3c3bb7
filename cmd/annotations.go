/*
	Copyright © 2025 AppOptics
	See AUTHORS and LICENSE for the license details and contributors.
*/

package cmd

import (
	cmdannotations "github.com/appoptics/appoptics-devkit/cmd/annotations"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/spf13/cobra"
)

func annotationsCmdCommand(config *specs.AopDevkitConfig) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "annotations",
		Aliases: []string{"a", "ann"},
		Short:   "Annotation streams commands.",
		Long:    `Manage annotation streams and events of the AppOptics service.`,
	}

	cmd.AddCommand(
		cmdannotations.AnnotationsListCommand(config),
		cmdannotations.AnnotationsGetCommand(config),
		cmdannotations.AnnotationsPostCommand(config),
		cmdannotations.AnnotationsDeleteCommand(config),
	)

	return cmd
}
