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

// CreateMeasurement builds the measurement payload entry for one
// sample, resolving the tag inheritance rules against the connection
// top-level tag set.
func (c *Client) CreateMeasurement(name string, value float64,
	opts *specs.MeasureOptions) *specs.Measurement {

	ans := &specs.Measurement{
		Name:  c.sanitize(name),
		Value: value,
	}

	if opts == nil {
		ans.Tags = c.GetTags()
		return ans
	}

	ans.Time = opts.Time
	ans.Period = opts.Period

	if len(opts.Tags) > 0 {
		if opts.InheritTags {
			tags := c.GetTags()
			for k, v := range opts.Tags {
				tags[k] = v
			}
			ans.Tags = tags
		} else {
			ans.Tags = opts.Tags
		}
	} else {
		ans.Tags = c.GetTags()
	}

	return ans
}

// SubmitMeasurement posts a single tagged measurement. At least one
// tag is required, either per-measure or on the connection.
func (c *Client) SubmitMeasurement(name string, value float64,
	opts *specs.MeasureOptions) error {

	m := c.CreateMeasurement(name, value, opts)
	if len(m.Tags) == 0 {
		return fmt.Errorf("at least one tag is needed")
	}

	payload := &specs.MeasurementsPayload{
		Measurements: []*specs.Measurement{m},
	}

	_, err := c.doRequest("POST", "/measurements", nil, payload)
	return err
}

// SubmitMeasurements posts a batch of already built measurements.
func (c *Client) SubmitMeasurements(mm []*specs.Measurement) error {
	if len(mm) == 0 {
		return nil
	}

	payload := &specs.MeasurementsPayload{Measurements: mm}
	_, err := c.doRequest("POST", "/measurements", nil, payload)
	return err
}

// GetMeasurements retrieves the samples of one metric. The raw
// response is returned as a generic map, the layout depends on the
// requested resolution and grouping.
func (c *Client) GetMeasurements(name string,
	q *specs.MeasurementsQuery) (map[string]interface{}, error) {

	if q == nil {
		q = &specs.MeasurementsQuery{}
	}

	if q.StartTime == 0 && q.Duration == 0 {
		return nil, fmt.Errorf("you must provide start_time or duration")
	}
	if q.StartTime != 0 && q.EndTime != 0 && q.Duration != 0 {
		return nil, fmt.Errorf(
			"it is an error to set start_time, end_time and duration")
	}

	params := url.Values{}
	resolution := q.Resolution
	if resolution == 0 {
		// Default to raw resolution
		resolution = 1
	}
	params.Set("resolution", strconv.Itoa(resolution))
	if q.StartTime != 0 {
		params.Set("start_time", strconv.FormatInt(q.StartTime, 10))
	}
	if q.EndTime != 0 {
		params.Set("end_time", strconv.FormatInt(q.EndTime, 10))
	}
	if q.Duration != 0 {
		params.Set("duration", strconv.FormatInt(q.Duration, 10))
	}
	for k, v := range q.Tags {
		params.Set(fmt.Sprintf("tags[%s]", k), v)
	}

	data, err := c.doRequest("GET",
		"/measurements/"+url.PathEscape(c.sanitize(name)), params, nil)
	if err != nil {
		return nil, err
	}

	ans := map[string]interface{}{}
	if err = json.Unmarshal(data, &ans); err != nil {
		return nil, errors.Wrap(err, "error on parse measurements")
	}

	return ans, nil
}

// GetComposite evaluates a composite expression. With a connection
// top-level tag set the tagged measurements route is used, else the
// legacy metrics route.
func (c *Client) GetComposite(compose string, startTime int64,
	resolution int) (map[string]interface{}, error) {

	if len(c.tags) > 0 {
		return c.GetTaggedComposite(compose, startTime, resolution)
	}
	return c.getComposite("/metrics", compose, startTime, resolution)
}

// GetTaggedComposite evaluates a composite expression over the tagged
// measurements store.
func (c *Client) GetTaggedComposite(compose string, startTime int64,
	resolution int) (map[string]interface{}, error) {

	return c.getComposite("/measurements", compose, startTime, resolution)
}

func (c *Client) getComposite(path, compose string, startTime int64,
	resolution int) (map[string]interface{}, error) {

	if startTime == 0 {
		return nil, fmt.Errorf("you must provide a start_time")
	}
	if resolution == 0 {
		// Default to raw resolution
		resolution = 1
	}

	params := url.Values{}
	params.Set("compose", compose)
	params.Set("start_time", strconv.FormatInt(startTime, 10))
	params.Set("resolution", strconv.Itoa(resolution))

	data, err := c.doRequest("GET", path, params, nil)
	if err != nil {
		return nil, err
	}

	ans := map[string]interface{}{}
	if err = json.Unmarshal(data, &ans); err != nil {
		return nil, errors.Wrap(err, "error on parse composite result")
	}

	return ans, nil
}
