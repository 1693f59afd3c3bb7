/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package client

import (
	"sort"
	"time"

	specs "github.com/appoptics/appoptics-devkit/pkg/specs"
)

// Aggregator implements client-side gauge aggregation to reduce the
// number of submitted measurements. With a period set the measure
// times are floored to that interval.
type Aggregator struct {
	client *Client

	// Global source for all legacy measurements
	Source string
	// Global tags, applied to the tagged set only
	Tags map[string]string

	Period      int64
	MeasureTime int64

	measurements       map[string]*specs.AggregatedMeasurement
	taggedMeasurements map[string]*specs.AggregatedMeasurement
}

type AggregatorOptions struct {
	Source      string
	Tags        map[string]string
	Period      int64
	MeasureTime int64
}

func NewAggregator(c *Client, opts *AggregatorOptions) *Aggregator {
	ans := &Aggregator{
		client:             c,
		Tags:               make(map[string]string, 0),
		measurements:       make(map[string]*specs.AggregatedMeasurement, 0),
		taggedMeasurements: make(map[string]*specs.AggregatedMeasurement, 0),
	}

	if opts != nil {
		ans.Source = opts.Source
		ans.Period = opts.Period
		ans.MeasureTime = opts.MeasureTime
		for k, v := range opts.Tags {
			ans.Tags[k] = v
		}
	}

	return ans
}

// GetTags returns a shallow copy of the top-level tag set.
func (a *Aggregator) GetTags() map[string]string {
	ans := make(map[string]string, len(a.Tags))
	for k, v := range a.Tags {
		ans[k] = v
	}
	return ans
}

// SetTags defines the top-level tag set for posting measurements.
func (a *Aggregator) SetTags(t map[string]string) {
	a.Tags = make(map[string]string, len(t))
	for k, v := range t {
		a.Tags[k] = v
	}
}

// AddTags adds one or more top-level tags for posting measurements.
func (a *Aggregator) AddTags(t map[string]string) {
	for k, v := range t {
		a.Tags[k] = v
	}
}

func aggregate(set map[string]*specs.AggregatedMeasurement, name string, value float64) {
	m, ok := set[name]
	if !ok {
		set[name] = &specs.AggregatedMeasurement{
			Name:  name,
			Count: 1,
			Sum:   value,
			Min:   value,
			Max:   value,
		}
		return
	}

	m.Sum += value
	m.Count++
	if value < m.Min {
		m.Min = value
	}
	if value > m.Max {
		m.Max = value
	}
}

// Add aggregates a value into the legacy set.
func (a *Aggregator) Add(name string, value float64) {
	aggregate(a.measurements, name, value)
}

// AddTagged aggregates a value into the tagged set.
func (a *Aggregator) AddTagged(name string, value float64) {
	aggregate(a.taggedMeasurements, name, value)
}

func sortedMeasures(set map[string]*specs.AggregatedMeasurement) []*specs.AggregatedMeasurement {
	names := []string{}
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)

	ans := []*specs.AggregatedMeasurement{}
	for _, n := range names {
		ans = append(ans, set[n])
	}
	return ans
}

// ToPayload maps the legacy set into the measurements POST format.
func (a *Aggregator) ToPayload() *specs.AggregatedPayload {
	ans := &specs.AggregatedPayload{
		Measurements: sortedMeasures(a.measurements),
		Source:       a.Source,
	}

	if mt := a.FloorMeasureTime(); mt > 0 {
		ans.Time = mt
	}

	return ans
}

// ToTaggedPayload maps the tagged set into the measurements POST
// format.
func (a *Aggregator) ToTaggedPayload() *specs.AggregatedPayload {
	ans := &specs.AggregatedPayload{
		Measurements: sortedMeasures(a.taggedMeasurements),
	}

	if len(a.Tags) > 0 {
		ans.Tags = a.GetTags()
	}

	if mt := a.FloorMeasureTime(); mt > 0 {
		ans.Time = mt
	}

	return ans
}

// GetMeasureTime pins and returns the measure time that would be
// submitted, so the same value is guaranteed for every measurement
// extracted into a queue.
func (a *Aggregator) GetMeasureTime() int64 {
	if mt := a.FloorMeasureTime(); mt > 0 {
		a.MeasureTime = mt
	}
	return a.MeasureTime
}

// FloorMeasureTime returns the floored measure time when a period is
// set, else the user supplied value, else zero.
func (a *Aggregator) FloorMeasureTime() int64 {
	if a.Period > 0 {
		mt := a.MeasureTime
		if mt == 0 {
			// Grab wall time
			mt = time.Now().Unix()
		}
		return mt - (mt % a.Period)
	}
	return a.MeasureTime
}

func (a *Aggregator) Clear() {
	a.measurements = make(map[string]*specs.AggregatedMeasurement, 0)
	a.taggedMeasurements = make(map[string]*specs.AggregatedMeasurement, 0)
	a.MeasureTime = 0
}

// Submit posts the aggregated sets to the API and clears the
// aggregator.
func (a *Aggregator) Submit() error {
	if len(a.measurements) > 0 {
		_, err := a.client.doRequest("POST", "/measurements",
			nil, a.ToPayload())
		if err != nil {
			return err
		}
	}

	if len(a.taggedMeasurements) > 0 {
		_, err := a.client.doRequest("POST", "/measurements",
			nil, a.ToTaggedPayload())
		if err != nil {
			return err
		}
	}

	a.Clear()
	return nil
}
