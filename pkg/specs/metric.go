/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package specs

import (
	"gopkg.in/yaml.v3"
)

const (
	MetricTypeGauge     = "gauge"
	MetricTypeComposite = "composite"
)

type Metric struct {
	Name        string                 `json:"name" yaml:"name"`
	DisplayName string                 `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Type        string                 `json:"type,omitempty" yaml:"type,omitempty"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Period      int                    `json:"period,omitempty" yaml:"period,omitempty"`
	Attributes  map[string]interface{} `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Composite   string                 `json:"composite,omitempty" yaml:"composite,omitempty"`
	SourceLag   int                    `json:"source_lag,omitempty" yaml:"source_lag,omitempty"`
}

// QueryInfo is the pagination envelope returned by all list APIs.
type QueryInfo struct {
	Offset int `json:"offset" yaml:"offset"`
	Length int `json:"length" yaml:"length"`
	Found  int `json:"found,omitempty" yaml:"found,omitempty"`
	Total  int `json:"total" yaml:"total"`
}

type MetricsPage struct {
	Query   QueryInfo `json:"query" yaml:"query"`
	Metrics []*Metric `json:"metrics" yaml:"metrics"`
}

func NewMetric(name, mtype string) *Metric {
	return &Metric{
		Name:       name,
		Type:       mtype,
		Attributes: make(map[string]interface{}, 0),
	}
}

func (m *Metric) IsGauge() bool {
	return m.Type == MetricTypeGauge
}

func (m *Metric) IsComposite() bool {
	return m.Type == MetricTypeComposite
}

func (m *Metric) GetAttribute(k string) (interface{}, bool) {
	v, ok := m.Attributes[k]
	return v, ok
}

func (m *Metric) Yaml() ([]byte, error) {
	return yaml.Marshal(m)
}
