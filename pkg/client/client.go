/*
Copyright © 2025 AppOptics
See AUTHORS and LICENSE for the license details and contributors.
*/
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"runtime"
	"strings"

	log "github.com/appoptics/appoptics-devkit/pkg/logger"
	specs "github.com/appoptics/appoptics-devkit/pkg/specs"

	"github.com/geaaru/rest-guard/pkg/guard"
	guard_specs "github.com/geaaru/rest-guard/pkg/specs"
	"github.com/pkg/errors"
)

// Client exposes the AppOptics API. It doesn't open any connection
// until the first request is executed.
type Client struct {
	Config *specs.AopDevkitConfig
	Logger *log.AopDevkitLogger

	RestGuard *guard.RestGuard
	Service   *guard_specs.RestService

	sanitize func(string) string
	tags     map[string]string
}

func NewClient(config *specs.AopDevkitConfig) (*Client, error) {
	api := config.GetApi()

	if api.Protocol != "http" && api.Protocol != "https" {
		return nil, fmt.Errorf("unsupported protocol: %s", api.Protocol)
	}

	if !isAscii(api.Token) {
		return nil, fmt.Errorf("only ascii is supported for the credentials")
	}

	// Work on a copy, the caller config is left untouched.
	rgc := *config.GetRest()
	if rgc.UserAgent == "" {
		rgc.UserAgent = computeUserAgent(api.UserAgent)
	}

	rg, err := guard.NewRestGuard(&rgc)
	if err != nil {
		return nil, errors.Wrap(err, "error on setup rest client")
	}

	basePath := strings.TrimSuffix(api.BasePath, "/")
	node := guard_specs.NewRestNode(api.Hostname,
		api.Hostname+basePath, api.Protocol == "https")

	service := guard_specs.NewRestService(api.Hostname)
	service.Retries = api.Retries
	service.RetryIntervalMs = api.RetryIntervalMs
	// Server errors are retried, everything else is handled by the
	// caller through the error mapping.
	service.RespValidatorCb = func(t *guard_specs.RestTicket) (bool, error) {
		if t.Response != nil && t.Response.StatusCode < 500 {
			return true, nil
		}
		return false, nil
	}
	service.AddNode(node)

	rg.AddService(service.GetName(), service)

	ans := &Client{
		Config:    config,
		Logger:    log.GetDefaultLogger(),
		RestGuard: rg,
		Service:   service,
		sanitize:  SanitizeNoOp,
		tags:      make(map[string]string, 0),
	}

	if api.SanitizeNames {
		ans.sanitize = SanitizeMetricName
	}

	for k, v := range api.Tags {
		ans.tags[k] = v
	}

	return ans, nil
}

func computeUserAgent(custom string) string {
	if custom != "" {
		return custom
	}
	return fmt.Sprintf("appoptics-devkit/%s (go; %s; %s-%s)",
		specs.AOPDEVKIT_VERSION, runtime.Version(),
		runtime.GOARCH, runtime.GOOS)
}

func isAscii(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

// GetTags returns a shallow copy of the top-level tag set.
func (c *Client) GetTags() map[string]string {
	ans := make(map[string]string, len(c.tags))
	for k, v := range c.tags {
		ans[k] = v
	}
	return ans
}

// SetTags defines the top-level tag set for posting measurements.
func (c *Client) SetTags(t map[string]string) {
	c.tags = make(map[string]string, len(t))
	for k, v := range t {
		c.tags[k] = v
	}
}

// AddTags adds to the top-level tag set.
func (c *Client) AddTags(t map[string]string) {
	for k, v := range t {
		c.tags[k] = v
	}
}

func (c *Client) SetSanitizer(f func(string) string) {
	c.sanitize = f
}

func (c *Client) Sanitize(name string) string {
	return c.sanitize(name)
}

// doRequest executes one API call and returns the raw response body.
// Server errors are retried by the rest guard with the configured
// interval, client errors are mapped to *APIError.
func (c *Client) doRequest(method, path string, params url.Values, body interface{}) ([]byte, error) {
	t := c.Service.GetTicket()
	defer t.Rip()

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "error on marshal request body")
		}
		payload = data
		t.RequestBodyCb = func(t *guard_specs.RestTicket) (bool, io.ReadCloser, error) {
			return true, io.NopCloser(bytes.NewReader(payload)), nil
		}
	}

	p := path
	if len(params) > 0 {
		p += "?" + params.Encode()
	}

	_, err := c.RestGuard.CreateRequest(t, method, p)
	if err != nil {
		return nil, err
	}

	t.Request.SetBasicAuth(c.Config.GetApi().Token, "")
	if body != nil {
		t.Request.Header.Add("Content-Type", "application/json")
	}

	if c.Logger != nil {
		c.Logger.DebugC(fmt.Sprintf("method=%s uri=%s", method, p))
	}

	err = c.RestGuard.Do(t)
	if err != nil {
		if t.Response != nil {
			return nil, fmt.Errorf("%s - %s - %s", path, err.Error(),
				t.Response.Status)
		}
		return nil, fmt.Errorf("%s - %s", path, err.Error())
	}

	var data []byte
	if t.Response.Body != nil {
		data, err = io.ReadAll(t.Response.Body)
		if err != nil {
			return nil, errors.Wrap(err, "error on read response body")
		}
	}

	if c.Logger != nil {
		c.Logger.DebugC(fmt.Sprintf("status code(<-): %d", t.Response.StatusCode))
	}

	if t.Response.StatusCode >= 400 {
		return nil, NewAPIError(t.Response.StatusCode, data)
	}

	return data, nil
}
