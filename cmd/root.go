/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appoptics/appoptics-devkit/pkg/helpers"
	"github.com/appoptics/appoptics-devkit/pkg/logger"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cliName = `Copyright (c) 2025 AppOptics

AppOptics Metrics Development Kit

API client and tooling for the AppOptics time-series metrics service.
`
)

var (
	BuildTime   string
	BuildCommit string
)

func initConfig(config *specs.AopDevkitConfig) {
	// Set env variable
	config.Viper.SetEnvPrefix(specs.AOPDEVKIT_ENV_PREFIX)
	config.Viper.BindEnv("config")
	config.Viper.SetDefault("config", "")

	// The classic token variable of the AppOptics tooling.
	config.Viper.BindEnv("api.token", "APPOPTICS_TOKEN")

	config.Viper.AutomaticEnv()

	// Create EnvKey Replacer for handle complex structure
	replacer := strings.NewReplacer(".", "__", "-", "_")
	config.Viper.SetEnvKeyReplacer(replacer)

	// Set config file name (without extension)
	config.Viper.SetConfigName(specs.AOPDEVKIT_CONFIGNAME)

	config.Viper.SetTypeByDefaultValue(true)
}

func initCommand(rootCmd *cobra.Command, config *specs.AopDevkitConfig) {
	var pflags = rootCmd.PersistentFlags()

	pflags.StringP("config", "c", "", "AppOptics devkit configuration file")
	pflags.BoolP("debug", "d", config.Viper.GetBool("general.debug"),
		"Enable debug output.")
	pflags.StringP("token", "t", "", "AppOptics API token.")

	config.Viper.BindPFlag("config", pflags.Lookup("config"))
	config.Viper.BindPFlag("general.debug", pflags.Lookup("debug"))
	config.Viper.BindPFlag("api.token", pflags.Lookup("token"))

	rootCmd.AddCommand(
		metricsCmdCommand(config),
		annotationsCmdCommand(config),
		alertsCmdCommand(config),
		runTestsCmdCommand(config),
	)
}

func Execute() {
	// Create Main Instance Config object
	var config *specs.AopDevkitConfig = specs.NewAopDevkitConfig(nil)

	initConfig(config)

	var rootCmd = &cobra.Command{
		Short:        cliName,
		Version:      fmt.Sprintf("%s-g%s %s", specs.AOPDEVKIT_VERSION, BuildCommit, BuildTime),
		Args:         cobra.OnlyValidArgs,
		SilenceUsage: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				cmd.Help()
				os.Exit(0)
			}
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			var v *viper.Viper = config.Viper

			v.SetConfigType("yml")
			if v.Get("config") == "" {
				config.Viper.AddConfigPath(".")
			} else {
				v.SetConfigFile(v.Get("config").(string))
			}

			// Parse configuration file
			err = config.Unmarshal()
			if err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); ok {
					// Config file not found; ignore error if desired
				} else {
					fmt.Println(err)
					os.Exit(1)
				}
			}

			// Initialize logger
			log := logger.NewAopDevkitLogger(config)
			if config.GetLogging().EnableLogFile {
				helpers.EnsureDirWithoutIds(
					filepath.Dir(config.GetLogging().Path), 0755)
				log.InitLogger2File()
			}
			log.SetAsDefault()
		},
	}

	initCommand(rootCmd, config)

	// Start command execution
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

}
