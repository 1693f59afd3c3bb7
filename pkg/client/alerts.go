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

func (c *Client) listAlertsPage(opts *ListOptions) (*specs.AlertsPage, error) {
	data, err := c.doRequest("GET", "/alerts", opts.toValues(), nil)
	if err != nil {
		return nil, err
	}

	page := &specs.AlertsPage{}
	if err = json.Unmarshal(data, page); err != nil {
		return nil, errors.Wrap(err, "error on parse alerts page")
	}

	return page, nil
}

// ListAlerts returns all the defined alerts.
func (c *Client) ListAlerts(opts *ListOptions) ([]*specs.Alert, error) {
	o := &ListOptions{}
	if opts != nil {
		*o = *opts
	}

	ans := []*specs.Alert{}
	for {
		page, err := c.listAlertsPage(o)
		if err != nil {
			return nil, err
		}

		ans = append(ans, page.Alerts...)

		offset := page.Query.Offset + page.Query.Length
		if page.Query.Length == 0 || offset >= page.Query.Total {
			break
		}
		o.Offset = offset
	}

	return ans, nil
}

// GetAlert retrieves one alert by name. A missing alert is not an
// error, the answer is nil.
func (c *Client) GetAlert(name string) (*specs.Alert, error) {
	params := url.Values{}
	params.Set("name", name)

	data, err := c.doRequest("GET", "/alerts", params, nil)
	if err != nil {
		return nil, err
	}

	page := &specs.AlertsPage{}
	if err = json.Unmarshal(data, page); err != nil {
		return nil, errors.Wrap(err, "error on parse alerts page")
	}

	if len(page.Alerts) == 0 {
		return nil, nil
	}
	return page.Alerts[0], nil
}

// DeleteAlert deletes an alert by name. The alert id needed by the API
// is resolved first; an already missing alert is a no-op.
func (c *Client) DeleteAlert(name string) error {
	alert, err := c.GetAlert(name)
	if err != nil {
		return err
	}
	if alert == nil {
		return nil
	}

	_, err = c.doRequest("DELETE",
		"/alerts/"+strconv.Itoa(alert.Id), nil, nil)
	return err
}
