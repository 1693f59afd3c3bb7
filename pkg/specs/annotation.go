/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package specs

type Annotation struct {
	Name        string                        `json:"name" yaml:"name"`
	DisplayName string                        `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Events      map[string][]*AnnotationEvent `json:"events,omitempty" yaml:"events,omitempty"`
	Query       QueryInfo                     `json:"query,omitempty" yaml:"query,omitempty"`
}

type AnnotationEvent struct {
	Id          int                `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string             `json:"title" yaml:"title"`
	Source      string             `json:"source,omitempty" yaml:"source,omitempty"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	StartTime   int64              `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime     int64              `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Links       []*AnnotationLink `json:"links,omitempty" yaml:"links,omitempty"`
}

type AnnotationLink struct {
	Rel   string `json:"rel,omitempty" yaml:"rel,omitempty"`
	Href  string `json:"href" yaml:"href"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

type AnnotationsPage struct {
	Query       QueryInfo     `json:"query" yaml:"query"`
	Annotations []*Annotation `json:"annotations" yaml:"annotations"`
}

func NewAnnotation(name, displayName string) *Annotation {
	return &Annotation{
		Name:        name,
		DisplayName: displayName,
	}
}

// GetPayload returns the stream metadata accepted on update.
func (a *Annotation) GetPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":         a.Name,
		"display_name": a.DisplayName,
	}
}
