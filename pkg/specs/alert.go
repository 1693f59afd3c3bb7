/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package specs

import (
	"gopkg.in/yaml.v3"
)

type Alert struct {
	Id           int                    `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string                 `json:"name" yaml:"name"`
	Description  string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Active       bool                   `json:"active,omitempty" yaml:"active,omitempty"`
	RearmSeconds int                    `json:"rearm_seconds,omitempty" yaml:"rearm_seconds,omitempty"`
	Conditions   []*AlertCondition      `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Services     []interface{}          `json:"services,omitempty" yaml:"services,omitempty"`
	Attributes   map[string]interface{} `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	CreatedAt    int64                  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt    int64                  `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

type AlertCondition struct {
	Id              int     `json:"id,omitempty" yaml:"id,omitempty"`
	Type            string  `json:"type,omitempty" yaml:"type,omitempty"`
	MetricName      string  `json:"metric_name,omitempty" yaml:"metric_name,omitempty"`
	Source          string  `json:"source,omitempty" yaml:"source,omitempty"`
	Threshold       float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Duration        int     `json:"duration,omitempty" yaml:"duration,omitempty"`
	SummaryFunction string  `json:"summary_function,omitempty" yaml:"summary_function,omitempty"`
}

type AlertsPage struct {
	Query  QueryInfo `json:"query" yaml:"query"`
	Alerts []*Alert  `json:"alerts" yaml:"alerts"`
}

func (a *Alert) IsActive() bool {
	return a.Active
}

func (a *Alert) Yaml() ([]byte, error) {
	return yaml.Marshal(a)
}
