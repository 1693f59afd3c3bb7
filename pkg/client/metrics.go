/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/pkg/errors"
)

// ListOptions describes the filters accepted by the list APIs.
type ListOptions struct {
	Offset int
	Length int
	Name   string
}

func (o *ListOptions) toValues() url.Values {
	ans := url.Values{}
	if o == nil {
		return ans
	}
	if o.Offset > 0 {
		ans.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.Length > 0 {
		ans.Set("length", strconv.Itoa(o.Length))
	}
	if o.Name != "" {
		ans.Set("name", o.Name)
	}
	return ans
}

func (c *Client) listMetricsPage(opts *ListOptions) (*specs.MetricsPage, error) {
	data, err := c.doRequest("GET", "/metrics", opts.toValues(), nil)
	if err != nil {
		return nil, err
	}

	page := &specs.MetricsPage{}
	if err = json.Unmarshal(data, page); err != nil {
		return nil, errors.Wrap(err, "error on parse metrics page")
	}

	return page, nil
}

// ListMetrics returns a single page of metrics.
func (c *Client) ListMetrics(opts *ListOptions) ([]*specs.Metric, error) {
	page, err := c.listMetricsPage(opts)
	if err != nil {
		return nil, err
	}
	return page.Metrics, nil
}

// ListAllMetrics walks the pagination envelope and returns every
// defined metric.
func (c *Client) ListAllMetrics(opts *ListOptions) ([]*specs.Metric, error) {
	o := &ListOptions{}
	if opts != nil {
		*o = *opts
	}

	ans := []*specs.Metric{}
	for {
		page, err := c.listMetricsPage(o)
		if err != nil {
			return nil, err
		}

		ans = append(ans, page.Metrics...)

		offset := page.Query.Offset + page.Query.Length
		if page.Query.Length == 0 || offset >= page.Query.Total {
			break
		}
		o.Offset = offset
	}

	return ans, nil
}

// GetMetric retrieves a metric definition. Only gauges are exposed by
// the measurements API.
func (c *Client) GetMetric(name string) (*specs.Metric, error) {
	data, err := c.doRequest("GET",
		"/metrics/"+url.PathEscape(c.sanitize(name)), nil, nil)
	if err != nil {
		return nil, err
	}

	metric := &specs.Metric{}
	if err = json.Unmarshal(data, metric); err != nil {
		return nil, errors.Wrap(err, "error on parse metric")
	}

	if !metric.IsGauge() && !metric.IsComposite() {
		return nil, fmt.Errorf(
			"the server sent me something that is not a gauge: %s",
			metric.Type)
	}

	return metric, nil
}

// CreateMetric creates or updates a metric definition. An empty type
// defaults to gauge.
func (c *Client) CreateMetric(m *specs.Metric) error {
	if m.Type == "" {
		m.Type = specs.MetricTypeGauge
	}
	m.Name = c.sanitize(m.Name)

	_, err := c.doRequest("PUT",
		"/metrics/"+url.PathEscape(m.Name), nil, m)
	return err
}

// UpdateMetric updates the properties of an existing metric.
func (c *Client) UpdateMetric(name string, props map[string]interface{}) error {
	_, err := c.doRequest("PUT",
		"/metrics/"+url.PathEscape(c.sanitize(name)), nil, props)
	return err
}

// CreateComposite defines a composite metric from a composite
// expression.
func (c *Client) CreateComposite(name, compose string,
	props map[string]interface{}) error {

	payload := map[string]interface{}{}
	for k, v := range props {
		payload[k] = v
	}
	payload["composite"] = compose
	payload["type"] = specs.MetricTypeComposite

	return c.UpdateMetric(name, payload)
}

// DeleteMetric deletes a single metric.
func (c *Client) DeleteMetric(name string) error {
	_, err := c.doRequest("DELETE",
		"/metrics/"+url.PathEscape(c.sanitize(name)), nil, nil)
	return err
}

// DeleteMetrics deletes a batch of metrics with one call.
func (c *Client) DeleteMetrics(names []string) error {
	sanitized := []string{}
	for _, n := range names {
		sanitized = append(sanitized, c.sanitize(n))
	}

	payload := map[string]interface{}{"names": sanitized}
	_, err := c.doRequest("DELETE", "/metrics", nil, payload)
	return err
}
