/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package specs

type Measurement struct {
	Name   string            `json:"name" yaml:"name"`
	Value  float64           `json:"value" yaml:"value"`
	Time   int64             `json:"time,omitempty" yaml:"time,omitempty"`
	Period int64             `json:"period,omitempty" yaml:"period,omitempty"`
	Tags   map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// AggregatedMeasurement is a client-side gauge rollup for one metric.
type AggregatedMeasurement struct {
	Name  string  `json:"name" yaml:"name"`
	Count int     `json:"count" yaml:"count"`
	Sum   float64 `json:"sum" yaml:"sum"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
}

type MeasurementsPayload struct {
	Measurements []*Measurement    `json:"measurements" yaml:"measurements"`
	Tags         map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Time         int64             `json:"time,omitempty" yaml:"time,omitempty"`
}

type AggregatedPayload struct {
	Measurements []*AggregatedMeasurement `json:"measurements" yaml:"measurements"`
	Source       string                   `json:"source,omitempty" yaml:"source,omitempty"`
	Tags         map[string]string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	Time         int64                    `json:"time,omitempty" yaml:"time,omitempty"`
}

// MeasureOptions describes the optional attributes of a single
// submitted measurement.
type MeasureOptions struct {
	Time   int64
	Period int64
	Tags   map[string]string
	// Merge the per-measure tags with the connection top-level tags
	InheritTags bool
}

// MeasurementsQuery describes the filters used on measurements
// retrieval.
type MeasurementsQuery struct {
	Resolution int
	StartTime  int64
	EndTime    int64
	Duration   int64
	Tags       map[string]string
}
