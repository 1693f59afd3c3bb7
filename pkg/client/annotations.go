/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package client

import (
	"encoding/json"
	"net/url"
	"strconv"

	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/pkg/errors"
)

func (c *Client) listAnnotationsPage(opts *ListOptions) (*specs.AnnotationsPage, error) {
	data, err := c.doRequest("GET", "/annotations", opts.toValues(), nil)
	if err != nil {
		return nil, err
	}

	page := &specs.AnnotationsPage{}
	if err = json.Unmarshal(data, page); err != nil {
		return nil, errors.Wrap(err, "error on parse annotations page")
	}

	return page, nil
}

// ListAnnotationStreams returns all the annotation streams.
func (c *Client) ListAnnotationStreams(opts *ListOptions) ([]*specs.Annotation, error) {
	o := &ListOptions{}
	if opts != nil {
		*o = *opts
	}

	ans := []*specs.Annotation{}
	for {
		page, err := c.listAnnotationsPage(o)
		if err != nil {
			return nil, err
		}

		ans = append(ans, page.Annotations...)

		offset := page.Query.Offset + page.Query.Length
		if page.Query.Length == 0 || offset >= page.Query.Total {
			break
		}
		o.Offset = offset
	}

	return ans, nil
}

// GetAnnotationStream retrieves one stream. With a start time > 0 the
// answer carries the stream events too.
func (c *Client) GetAnnotationStream(name string, startTime, endTime int64) (*specs.Annotation, error) {
	params := url.Values{}
	if startTime > 0 {
		params.Set("start_time", strconv.FormatInt(startTime, 10))
	}
	if endTime > 0 {
		params.Set("end_time", strconv.FormatInt(endTime, 10))
	}

	data, err := c.doRequest("GET",
		"/annotations/"+url.PathEscape(name), params, nil)
	if err != nil {
		return nil, err
	}

	ans := &specs.Annotation{}
	if err = json.Unmarshal(data, ans); err != nil {
		return nil, errors.Wrap(err, "error on parse annotation stream")
	}

	return ans, nil
}

// GetAnnotationEvent retrieves a specific annotation event by id.
func (c *Client) GetAnnotationEvent(stream string, id int) (*specs.AnnotationEvent, error) {
	data, err := c.doRequest("GET",
		"/annotations/"+url.PathEscape(stream)+"/"+strconv.Itoa(id),
		nil, nil)
	if err != nil {
		return nil, err
	}

	ans := &specs.AnnotationEvent{}
	if err = json.Unmarshal(data, ans); err != nil {
		return nil, errors.Wrap(err, "error on parse annotation event")
	}

	return ans, nil
}

// UpdateAnnotationStream updates the stream metadata.
func (c *Client) UpdateAnnotationStream(name, displayName string) (*specs.Annotation, error) {
	payload := specs.NewAnnotation(name, displayName).GetPayload()

	data, err := c.doRequest("PUT",
		"/annotations/"+url.PathEscape(name), nil, payload)
	if err != nil {
		return nil, err
	}

	ans := &specs.Annotation{}
	if len(data) > 0 {
		if err = json.Unmarshal(data, ans); err != nil {
			return nil, errors.Wrap(err, "error on parse annotation stream")
		}
	}

	return ans, nil
}

// PostAnnotationEvent creates an annotation event on the stream.
// If the annotation stream does not exist, it will be created
// automatically.
func (c *Client) PostAnnotationEvent(stream string,
	ev *specs.AnnotationEvent) (*specs.AnnotationEvent, error) {

	data, err := c.doRequest("POST",
		"/annotations/"+url.PathEscape(stream), nil, ev)
	if err != nil {
		return nil, err
	}

	ans := &specs.AnnotationEvent{}
	if len(data) > 0 {
		if err = json.Unmarshal(data, ans); err != nil {
			return nil, errors.Wrap(err, "error on parse annotation event")
		}
	}

	return ans, nil
}

// DeleteAnnotationStream deletes an annotation stream.
func (c *Client) DeleteAnnotationStream(name string) error {
	_, err := c.doRequest("DELETE",
		"/annotations/"+url.PathEscape(name), nil, nil)
	return err
}
