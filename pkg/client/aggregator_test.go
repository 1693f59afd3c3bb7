/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package client_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"

	. "github.com/appoptics/appoptics-devkit/pkg/client"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Aggregator Test", func() {

	Context("Aggregation", func() {

		agg := NewAggregator(nil, nil)
		agg.Add("cpu", 42)
		agg.Add("cpu", 10)
		agg.Add("cpu", 51)
		agg.Add("mem", 8)

		payload := agg.ToPayload()

		It("rolls up count, sum, min and max", func() {
			Expect(payload.Measurements).To(HaveLen(2))

			cpu := payload.Measurements[0]
			Expect(cpu.Name).To(Equal("cpu"))
			Expect(cpu.Count).To(Equal(3))
			Expect(cpu.Sum).To(Equal(float64(103)))
			Expect(cpu.Min).To(Equal(float64(10)))
			Expect(cpu.Max).To(Equal(float64(51)))

			mem := payload.Measurements[1]
			Expect(mem.Name).To(Equal("mem"))
			Expect(mem.Count).To(Equal(1))
		})

		It("keeps the legacy and tagged sets separated", func() {
			Expect(agg.ToTaggedPayload().Measurements).To(HaveLen(0))
		})

	})

	Context("Tagged aggregation", func() {

		agg := NewAggregator(nil, &AggregatorOptions{
			Tags: map[string]string{"region": "us-east-1"},
		})
		agg.AddTagged("cpu", 1)
		agg.AddTagged("cpu", 3)

		payload := agg.ToTaggedPayload()

		It("carries the top-level tags", func() {
			Expect(payload.Tags).To(Equal(
				map[string]string{"region": "us-east-1"}))
			Expect(payload.Measurements).To(HaveLen(1))
			Expect(payload.Measurements[0].Count).To(Equal(2))
		})

	})

	Context("Measure time", func() {

		It("floors the measure time to the period", func() {
			agg := NewAggregator(nil, &AggregatorOptions{
				Period:      60,
				MeasureTime: 1418838418,
			})
			Expect(agg.FloorMeasureTime()).To(Equal(int64(1418838360)))
		})

		It("keeps the user time without period", func() {
			agg := NewAggregator(nil, &AggregatorOptions{
				MeasureTime: 1418838418,
			})
			Expect(agg.FloorMeasureTime()).To(Equal(int64(1418838418)))
		})

		It("returns zero without period and time", func() {
			agg := NewAggregator(nil, nil)
			Expect(agg.FloorMeasureTime()).To(Equal(int64(0)))
		})

		It("floors wall time when only the period is set", func() {
			agg := NewAggregator(nil, &AggregatorOptions{Period: 60})
			Expect(agg.FloorMeasureTime() % 60).To(Equal(int64(0)))
		})

	})

	Context("Submission", func() {

		It("posts both sets and clears the aggregator", func() {
			posted := []*specs.AggregatedPayload{}

			mux := http.NewServeMux()
			mux.HandleFunc("POST /v1/measurements",
				func(w http.ResponseWriter, r *http.Request) {
					payload := &specs.AggregatedPayload{}
					json.NewDecoder(r.Body).Decode(payload)
					posted = append(posted, payload)
					fmt.Fprint(w, "{}")
				})

			server := httptest.NewServer(mux)
			defer server.Close()

			u, err := url.Parse(server.URL)
			Expect(err).Should(BeNil())

			c, err := NewClient(newTestConfig(u.Host))
			Expect(err).Should(BeNil())

			agg := NewAggregator(c, &AggregatorOptions{
				Source: "mysource",
				Tags:   map[string]string{"region": "us-east-1"},
			})
			agg.Add("cpu", 42)
			agg.AddTagged("cpu", 10)

			err = agg.Submit()
			Expect(err).Should(BeNil())

			Expect(posted).To(HaveLen(2))
			Expect(posted[0].Source).To(Equal("mysource"))
			Expect(posted[0].Measurements[0].Sum).To(Equal(float64(42)))
			Expect(posted[1].Tags).To(Equal(
				map[string]string{"region": "us-east-1"}))

			Expect(agg.ToPayload().Measurements).To(HaveLen(0))
			Expect(agg.ToTaggedPayload().Measurements).To(HaveLen(0))
		})

	})

})
