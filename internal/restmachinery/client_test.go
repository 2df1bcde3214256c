package restmachinery

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testUsername = "guest"
	testPassword = "guest"
)

func testBaseClient(serverURL string) *BaseClient {
	return &BaseClient{
		APIAddress: fmt.Sprintf("%s/api", serverURL),
		Username:   testUsername,
		Password:   testPassword,
		HTTPClient: &http.Client{},
	}
}

func TestSubmitRequestSetsBasicAuth(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				username, password, ok := r.BasicAuth()
				require.True(t, ok)
				require.Equal(t, testUsername, username)
				require.Equal(t, testPassword, password)
				w.WriteHeader(http.StatusOK)
			},
		),
	)
	defer server.Close()
	resp, err := testBaseClient(server.URL).SubmitRequest(
		Request{
			Method: http.MethodGet,
			Path:   "overview",
		},
	)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestSubmitRequestSetsQueryParams(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "true", r.URL.Query().Get("if-unused"))
				w.WriteHeader(http.StatusNoContent)
			},
		),
	)
	defer server.Close()
	resp, err := testBaseClient(server.URL).SubmitRequest(
		Request{
			Method: http.MethodDelete,
			Path:   "exchanges/%2F/x",
			QueryParams: map[string]string{
				"if-unused": "true",
			},
		},
	)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestSubmitRequestErrorStatus(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprintln(
					w,
					`{"error":"Object Not Found","reason":"Not Found"}`,
				)
			},
		),
	)
	defer server.Close()
	_, err := testBaseClient(server.URL).SubmitRequest(
		Request{
			Method: http.MethodGet,
			Path:   "queues/%2F/nope",
		},
	)
	require.Error(t, err)
	httpErr, ok := err.(*ErrHTTP)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	require.Equal(t, "Object Not Found", httpErr.ServerError)
	require.Equal(t, "Not Found", httpErr.Reason)
}

func TestExecuteRequestDecodesJSON(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, `{"name":"q1","durable":true}`)
			},
		),
	)
	defer server.Close()
	respObj := map[string]interface{}{}
	err := testBaseClient(server.URL).ExecuteRequest(
		Request{
			Method:  http.MethodGet,
			Path:    "queues/%2F/q1",
			RespObj: &respObj,
		},
	)
	require.NoError(t, err)
	require.Equal(t, "q1", respObj["name"])
	require.Equal(t, true, respObj["durable"])
}

func TestExecuteRequestSkipsNonJSONBody(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				fmt.Fprintln(w, "all good")
			},
		),
	)
	defer server.Close()
	respObj := map[string]interface{}{}
	err := testBaseClient(server.URL).ExecuteRequest(
		Request{
			Method:  http.MethodGet,
			Path:    "overview",
			RespObj: &respObj,
		},
	)
	require.NoError(t, err)
	require.Empty(t, respObj)
}

func TestExecuteRequestSkipsEmptyBody(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
		),
	)
	defer server.Close()
	respObj := map[string]interface{}{}
	err := testBaseClient(server.URL).ExecuteRequest(
		Request{
			Method:  http.MethodDelete,
			Path:    "queues/%2F/q1",
			RespObj: &respObj,
		},
	)
	require.NoError(t, err)
	require.Empty(t, respObj)
}

func TestExecuteRequestMalformedJSON(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, `{"name":`)
			},
		),
	)
	defer server.Close()
	respObj := map[string]interface{}{}
	err := testBaseClient(server.URL).ExecuteRequest(
		Request{
			Method:  http.MethodGet,
			Path:    "overview",
			RespObj: &respObj,
		},
	)
	require.Error(t, err)
	require.IsType(t, &ErrDecoding{}, err)
}

func TestSubmitRequestSetsContentType(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(
					t,
					"application/json",
					r.Header.Get("Content-Type"),
				)
				w.WriteHeader(http.StatusCreated)
			},
		),
	)
	defer server.Close()
	resp, err := testBaseClient(server.URL).SubmitRequest(
		Request{
			Method: http.MethodPut,
			Path:   "queues/%2F/q1",
			ReqBodyObj: map[string]interface{}{
				"durable": true,
			},
		},
	)
	require.NoError(t, err)
	resp.Body.Close()
}
