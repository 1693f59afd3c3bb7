/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package specs_test

import (
	"os"
	"strings"

	. "github.com/appoptics/appoptics-devkit/pkg/specs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	v "github.com/spf13/viper"
)

var _ = Describe("Specs Test", func() {

	Context("Config1", func() {
		os.Setenv("APPOPTICS_GENERAL__DEBUG", "true")
		config := NewAopDevkitConfig(v.New())
		// Set env variable
		config.Viper.SetEnvPrefix(AOPDEVKIT_ENV_PREFIX)
		config.Viper.BindEnv("config")
		config.Viper.SetDefault("config", "")

		config.Viper.AutomaticEnv()

		// Create EnvKey Replacer for handle complex structure
		replacer := strings.NewReplacer(".", "__")
		config.Viper.SetEnvKeyReplacer(replacer)

		err := config.Unmarshal()

		It("Convert env1", func() {

			Expect(err).Should(BeNil())
			Expect(config.GetGeneral().Debug).To(Equal(true))
		})

	})

	Context("Config2", func() {
		os.Setenv("APPOPTICS_TOKEN", "key_from_env")
		config := NewAopDevkitConfig(v.New())
		config.Viper.SetEnvPrefix(AOPDEVKIT_ENV_PREFIX)
		config.Viper.BindEnv("api.token", "APPOPTICS_TOKEN")
		config.Viper.AutomaticEnv()

		err := config.Unmarshal()

		It("Reads the token from the environment", func() {
			Expect(err).Should(BeNil())
			Expect(config.GetApi().Token).To(Equal("key_from_env"))
		})

		It("Keeps the API defaults", func() {
			Expect(config.GetApi().Hostname).To(Equal("api.appoptics.com"))
			Expect(config.GetApi().BasePath).To(Equal("/v1/"))
			Expect(config.GetApi().Protocol).To(Equal("https"))
			Expect(config.GetApi().Retries).To(Equal(3))
		})
	})

	Context("Metric", func() {

		It("identifies the metric type", func() {
			m := NewMetric("cpu", MetricTypeGauge)
			Expect(m.IsGauge()).To(Equal(true))
			Expect(m.IsComposite()).To(Equal(false))
		})

		It("exposes the optional attributes", func() {
			m := NewMetric("cpu", MetricTypeGauge)
			m.Attributes["display_units_long"] = "Percent"

			val, ok := m.GetAttribute("display_units_long")
			Expect(ok).To(Equal(true))
			Expect(val).To(Equal("Percent"))

			_, ok = m.GetAttribute("missing")
			Expect(ok).To(Equal(false))
		})

	})

	Context("Annotation", func() {

		It("builds the stream update payload", func() {
			a := NewAnnotation("deploys", "Deployments")
			Expect(a.GetPayload()).To(Equal(map[string]interface{}{
				"name":         "deploys",
				"display_name": "Deployments",
			}))
		})

	})

})
