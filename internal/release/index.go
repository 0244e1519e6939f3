package release

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mintyPT/jsontoggle/internal/logging"
	"github.com/mintyPT/jsontoggle/internal/version"
)

// restyLogger routes resty's internal logging through structured logging.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// IndexClient queries a PyPI-compatible package index to check whether a
// version has already been published, so a release run can fail before the
// publish tool uploads a duplicate.
type IndexClient struct {
	client *resty.Client
}

// NewIndexClient creates an index client with timeout handling, retry logic
// for connection errors, and structured request logging.
func NewIndexClient(baseURL string, timeoutSeconds int) *IndexClient {
	client := resty.New()

	client.SetLogger(restyLogger{})

	client.
		SetTimeout(time.Duration(timeoutSeconds)*time.Second).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("jsontoggle/%s", version.Version))

	client.
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Only retry on connection errors, not HTTP errors
			return err != nil
		})

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Checking package index: %s %s", req.Method, req.URL)
		return nil
	})
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("Package index response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	return &IndexClient{client: client}
}

// Released reports whether the index already knows the given version of the
// package. Uses the JSON API route shared by PyPI-compatible indexes
// (/pypi/<name>/<version>/json): 200 means published, 404 means free.
func (ic *IndexClient) Released(ctx context.Context, name, ver string) (bool, error) {
	resp, err := ic.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/pypi/%s/%s/json", name, ver))
	if err != nil {
		return false, fmt.Errorf("package index request failed: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected package index response: %s", resp.Status())
	}
}
