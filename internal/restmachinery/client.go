package restmachinery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// BaseClient holds the immutable connection configuration and implements
// the generic request/response machinery that every resource-specific
// client delegates to.
type BaseClient struct {
	APIAddress string
	Username   string
	Password   string
	HTTPClient *http.Client
}

// ExecuteRequest submits the request and, when the response carries a JSON
// body and apiReq.RespObj is non-nil, decodes that body into apiReq.RespObj.
// Responses with an empty body or a non-JSON content type leave RespObj
// untouched.
func (b *BaseClient) ExecuteRequest(apiReq Request) error {
	resp, err := b.SubmitRequest(apiReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if apiReq.RespObj != nil {
		respBodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading response body")
		}
		if len(bytes.TrimSpace(respBodyBytes)) == 0 || !hasJSONContentType(resp) {
			return nil
		}
		if err := json.Unmarshal(respBodyBytes, apiReq.RespObj); err != nil {
			return NewErrDecoding(err.Error())
		}
	}
	return nil
}

// SubmitRequest issues a single request and returns the raw response. A
// non-2xx status is converted into an *ErrHTTP; there are no retries. The
// caller owns the response body.
func (b *BaseClient) SubmitRequest(apiReq Request) (*http.Response, error) {
	var reqBodyReader io.Reader
	bodied := false
	if apiReq.ReqBodyObj != nil {
		bodied = true
		switch rb := apiReq.ReqBodyObj.(type) {
		case []byte:
			reqBodyReader = bytes.NewBuffer(rb)
		default:
			reqBodyBytes, err := json.Marshal(apiReq.ReqBodyObj)
			if err != nil {
				return nil, errors.Wrap(err, "error marshaling request body")
			}
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	ctx := apiReq.Context
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(
		ctx,
		apiReq.Method,
		fmt.Sprintf("%s/%s", b.APIAddress, apiReq.Path),
		reqBodyReader,
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			apiReq.Method,
			apiReq.Path,
		)
	}
	if len(apiReq.QueryParams) > 0 {
		q := req.URL.Query()
		for k, v := range apiReq.QueryParams {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}
	req.SetBasicAuth(b.Username, b.Password)
	if bodied {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range apiReq.Headers {
		req.Header.Add(k, v)
	}

	resp, err := b.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error invoking management API")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		apiErr := NewErrHTTP(resp.StatusCode)
		bodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "error reading error response body")
		}
		if hasJSONContentType(resp) {
			// The server's error document is informative only. If it doesn't
			// decode, the status code still tells the story.
			json.Unmarshal(bodyBytes, apiErr) // nolint: errcheck
		}
		return nil, apiErr
	}
	return resp, nil
}

func hasJSONContentType(resp *http.Response) bool {
	return strings.Contains(resp.Header.Get("Content-Type"), "json")
}
