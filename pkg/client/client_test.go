/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package client_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"

	. "github.com/appoptics/appoptics-devkit/pkg/client"
	"github.com/appoptics/appoptics-devkit/pkg/logger"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newTestConfig(host string) *specs.AopDevkitConfig {
	config := specs.NewAopDevkitConfig(nil)
	config.Unmarshal()

	config.GetLogging().Color = false
	config.GetLogging().EnableEmoji = false
	config.GetLogging().Level = "error"

	config.GetApi().Token = "key_test"
	config.GetApi().Hostname = host
	config.GetApi().Protocol = "http"
	config.GetApi().BasePath = "/v1/"
	config.GetApi().Retries = 1
	config.GetApi().RetryIntervalMs = 1

	return config
}

func fakeMetricJson(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"type":        "gauge",
		"description": "a description",
		"period":      60,
		"attributes": map[string]interface{}{
			"created_by_ua": "fake",
		},
	}
}

var _ = Describe("Client Test", func() {

	var server *httptest.Server
	var config *specs.AopDevkitConfig

	var lastAuth string
	var lastPayload *specs.MeasurementsPayload
	var metricsCalls []url.Values
	var compositeRoute string
	var flakyCalls int

	BeforeEach(func() {
		lastAuth = ""
		lastPayload = nil
		metricsCalls = []url.Values{}
		compositeRoute = ""
		flakyCalls = 0

		mux := http.NewServeMux()

		mux.HandleFunc("POST /v1/measurements",
			func(w http.ResponseWriter, r *http.Request) {
				lastAuth = r.Header.Get("Authorization")
				payload := &specs.MeasurementsPayload{}
				json.NewDecoder(r.Body).Decode(payload)
				lastPayload = payload
				fmt.Fprint(w, "{}")
			})

		mux.HandleFunc("GET /v1/measurements",
			func(w http.ResponseWriter, r *http.Request) {
				compositeRoute = "measurements"
				json.NewEncoder(w).Encode(map[string]interface{}{
					"compose": r.URL.Query().Get("compose"),
				})
			})

		mux.HandleFunc("GET /v1/metrics",
			func(w http.ResponseWriter, r *http.Request) {
				params := r.URL.Query()

				if compose := params.Get("compose"); compose != "" {
					compositeRoute = "metrics"
					json.NewEncoder(w).Encode(map[string]interface{}{
						"compose": compose,
					})
					return
				}

				metricsCalls = append(metricsCalls, params)

				offset, _ := strconv.Atoi(params.Get("offset"))
				length, _ := strconv.Atoi(params.Get("length"))
				if length == 0 {
					length = 100
				}

				total := 12
				page := []map[string]interface{}{}
				for i := offset; i < total && i < offset+length; i++ {
					page = append(page,
						fakeMetricJson(fmt.Sprintf("metric%d", i)))
				}

				json.NewEncoder(w).Encode(map[string]interface{}{
					"query": map[string]interface{}{
						"offset": offset,
						"length": len(page),
						"found":  total,
						"total":  total,
					},
					"metrics": page,
				})
			})

		mux.HandleFunc("GET /v1/metrics/cpu",
			func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(fakeMetricJson("cpu"))
			})

		mux.HandleFunc("GET /v1/metrics/counted",
			func(w http.ResponseWriter, r *http.Request) {
				m := fakeMetricJson("counted")
				m["type"] = "counter"
				json.NewEncoder(w).Encode(m)
			})

		mux.HandleFunc("GET /v1/metrics/broken",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(400)
				fmt.Fprint(w,
					`{"errors":{"params":{"name":["is not present"]}}}`)
			})

		mux.HandleFunc("GET /v1/metrics/flaky",
			func(w http.ResponseWriter, r *http.Request) {
				flakyCalls++
				if flakyCalls == 1 {
					w.WriteHeader(500)
					return
				}
				json.NewEncoder(w).Encode(fakeMetricJson("flaky"))
			})

		server = httptest.NewServer(mux)

		u, err := url.Parse(server.URL)
		Expect(err).Should(BeNil())

		config = newTestConfig(u.Host)
		logger.NewAopDevkitLogger(config).SetAsDefault()
	})

	AfterEach(func() {
		server.Close()
	})

	Context("Connection", func() {

		It("rejects an invalid protocol", func() {
			config.GetApi().Protocol = "ftp"
			_, err := NewClient(config)
			Expect(err).ShouldNot(BeNil())
		})

		It("rejects non ascii credentials", func() {
			config.GetApi().Token = "clé"
			_, err := NewClient(config)
			Expect(err).ShouldNot(BeNil())
		})

		It("leaves the caller rest config untouched", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			Expect(config.GetRest().UserAgent).To(Equal(""))
			Expect(c.RestGuard.GetUserAgent()).To(
				ContainSubstring("appoptics-devkit/"))
		})

		It("manages the top-level tag set", func() {
			config.GetApi().Tags = map[string]string{"region": "us-east-1"}
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			Expect(c.GetTags()).To(Equal(
				map[string]string{"region": "us-east-1"}))

			c.AddTags(map[string]string{"az": "a"})
			Expect(c.GetTags()).To(HaveLen(2))

			c.SetTags(map[string]string{"host": "h1"})
			Expect(c.GetTags()).To(Equal(
				map[string]string{"host": "h1"}))
		})

	})

	Context("Measurements", func() {

		It("submits a tagged measurement with auth", func() {
			config.GetApi().Tags = map[string]string{"region": "us-east-1"}
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			err = c.SubmitMeasurement("cpu.load", 0.75, nil)
			Expect(err).Should(BeNil())

			expectedAuth := "Basic " + base64.StdEncoding.EncodeToString(
				[]byte("key_test:"))
			Expect(lastAuth).To(Equal(expectedAuth))

			Expect(lastPayload.Measurements).To(HaveLen(1))
			Expect(lastPayload.Measurements[0].Name).To(Equal("cpu.load"))
			Expect(lastPayload.Measurements[0].Value).To(Equal(0.75))
			Expect(lastPayload.Measurements[0].Tags).To(Equal(
				map[string]string{"region": "us-east-1"}))
		})

		It("merges per-measure tags on inheritance", func() {
			config.GetApi().Tags = map[string]string{"region": "us-east-1"}
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			err = c.SubmitMeasurement("cpu.load", 1, &specs.MeasureOptions{
				Tags:        map[string]string{"host": "h1"},
				InheritTags: true,
			})
			Expect(err).Should(BeNil())

			Expect(lastPayload.Measurements[0].Tags).To(Equal(
				map[string]string{"region": "us-east-1", "host": "h1"}))
		})

		It("replaces the tag set without inheritance", func() {
			config.GetApi().Tags = map[string]string{"region": "us-east-1"}
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			err = c.SubmitMeasurement("cpu.load", 1, &specs.MeasureOptions{
				Tags: map[string]string{"host": "h1"},
			})
			Expect(err).Should(BeNil())

			Expect(lastPayload.Measurements[0].Tags).To(Equal(
				map[string]string{"host": "h1"}))
		})

		It("requires at least one tag", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			err = c.SubmitMeasurement("cpu.load", 1, nil)
			Expect(err).ShouldNot(BeNil())
			Expect(lastPayload).Should(BeNil())
		})

		It("evaluates a composite on the legacy route", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			ans, err := c.GetComposite(`s("cpu", "*")`, 100, 0)
			Expect(err).Should(BeNil())
			Expect(compositeRoute).To(Equal("metrics"))
			Expect(ans["compose"]).To(Equal(`s("cpu", "*")`))
		})

		It("evaluates a composite on the tagged route with tags", func() {
			config.GetApi().Tags = map[string]string{"region": "us-east-1"}
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			_, err = c.GetComposite(`s("cpu", "*")`, 100, 0)
			Expect(err).Should(BeNil())
			Expect(compositeRoute).To(Equal("measurements"))
		})

		It("requires a start time for composites", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			_, err = c.GetComposite(`s("cpu", "*")`, 0, 0)
			Expect(err).ShouldNot(BeNil())
		})

		It("validates the measurements query filters", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			_, err = c.GetMeasurements("cpu", &specs.MeasurementsQuery{})
			Expect(err).ShouldNot(BeNil())

			_, err = c.GetMeasurements("cpu", &specs.MeasurementsQuery{
				StartTime: 100,
				EndTime:   200,
				Duration:  100,
			})
			Expect(err).ShouldNot(BeNil())
		})

	})

	Context("Metrics", func() {

		It("retrieves a gauge", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			metric, err := c.GetMetric("cpu")
			Expect(err).Should(BeNil())
			Expect(metric.Name).To(Equal("cpu"))
			Expect(metric.IsGauge()).To(Equal(true))
			Expect(metric.Period).To(Equal(60))
		})

		It("refuses metrics that are not gauges", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			_, err = c.GetMetric("counted")
			Expect(err).ShouldNot(BeNil())
		})

		It("lists a single page", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			metrics, err := c.ListMetrics(&ListOptions{Length: 5})
			Expect(err).Should(BeNil())
			Expect(metrics).To(HaveLen(5))
			Expect(metrics[0].Name).To(Equal("metric0"))
		})

		It("walks all the pages", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			metrics, err := c.ListAllMetrics(&ListOptions{Length: 5})
			Expect(err).Should(BeNil())
			Expect(metrics).To(HaveLen(12))
			Expect(metricsCalls).To(HaveLen(3))
		})

		It("retries on server errors", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			metric, err := c.GetMetric("flaky")
			Expect(err).Should(BeNil())
			Expect(metric.Name).To(Equal("flaky"))
			Expect(flakyCalls).To(Equal(2))
		})

		It("maps client errors", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			_, err = c.GetMetric("broken")
			Expect(err).ShouldNot(BeNil())
			Expect(IsBadRequest(err)).To(Equal(true))
			Expect(err.Error()).To(Equal(
				"[400] params: name: is not present"))
		})

	})

})
