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
	"strconv"

	. "github.com/appoptics/appoptics-devkit/pkg/client"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func fakeAlertJson(id int, name string, active bool) map[string]interface{} {
	return map[string]interface{}{
		"id":            id,
		"name":          name,
		"active":        active,
		"rearm_seconds": 600,
		"conditions": []map[string]interface{}{
			{
				"id":          id * 10,
				"type":        "above",
				"metric_name": "cpu",
				"threshold":   90,
			},
		},
	}
}

var _ = Describe("Alerts Test", func() {

	var server *httptest.Server
	var config *specs.AopDevkitConfig
	var deleted []string

	BeforeEach(func() {
		deleted = []string{}

		mux := http.NewServeMux()

		mux.HandleFunc("GET /v1/alerts",
			func(w http.ResponseWriter, r *http.Request) {
				params := r.URL.Query()

				if name := params.Get("name"); name != "" {
					alerts := []map[string]interface{}{}
					if name == "cpu.high" {
						alerts = append(alerts,
							fakeAlertJson(1, "cpu.high", true))
					}
					json.NewEncoder(w).Encode(map[string]interface{}{
						"query": map[string]interface{}{
							"offset": 0,
							"length": len(alerts),
							"total":  len(alerts),
						},
						"alerts": alerts,
					})
					return
				}

				offset, _ := strconv.Atoi(params.Get("offset"))
				total := 5
				alerts := []map[string]interface{}{}
				for i := offset; i < total && i < offset+2; i++ {
					alerts = append(alerts, fakeAlertJson(i,
						fmt.Sprintf("alert%d", i), i%2 == 0))
				}

				json.NewEncoder(w).Encode(map[string]interface{}{
					"query": map[string]interface{}{
						"offset": offset,
						"length": len(alerts),
						"total":  total,
					},
					"alerts": alerts,
				})
			})

		mux.HandleFunc("DELETE /v1/alerts/{id}",
			func(w http.ResponseWriter, r *http.Request) {
				deleted = append(deleted, r.PathValue("id"))
				w.WriteHeader(204)
			})

		server = httptest.NewServer(mux)

		u, err := url.Parse(server.URL)
		Expect(err).Should(BeNil())

		config = newTestConfig(u.Host)
	})

	AfterEach(func() {
		server.Close()
	})

	Context("Alerts", func() {

		It("walks all the alert pages", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			alerts, err := c.ListAlerts(nil)
			Expect(err).Should(BeNil())
			Expect(alerts).To(HaveLen(5))
			Expect(alerts[0].Name).To(Equal("alert0"))
			Expect(alerts[0].IsActive()).To(Equal(true))
			Expect(alerts[0].RearmSeconds).To(Equal(600))
			Expect(alerts[0].Conditions).To(HaveLen(1))
			Expect(alerts[0].Conditions[0].MetricName).To(Equal("cpu"))
		})

		It("retrieves an alert by name", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			alert, err := c.GetAlert("cpu.high")
			Expect(err).Should(BeNil())
			Expect(alert).ShouldNot(BeNil())
			Expect(alert.Id).To(Equal(1))
			Expect(alert.Name).To(Equal("cpu.high"))
		})

		It("answers nil for a missing alert", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			alert, err := c.GetAlert("not.there")
			Expect(err).Should(BeNil())
			Expect(alert).Should(BeNil())
		})

		It("deletes an alert through its id", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			err = c.DeleteAlert("cpu.high")
			Expect(err).Should(BeNil())
			Expect(deleted).To(Equal([]string{"1"}))
		})

		It("treats deleting a missing alert as a no-op", func() {
			c, err := NewClient(config)
			Expect(err).Should(BeNil())

			err = c.DeleteAlert("not.there")
			Expect(err).Should(BeNil())
			Expect(deleted).To(HaveLen(0))
		})

	})

})
