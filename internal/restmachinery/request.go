package restmachinery

import "context"

// Request is a declarative description of a single management API call.
type Request struct {
	Context     context.Context
	Method      string
	Path        string
	QueryParams map[string]string
	Headers     map[string]string
	ReqBodyObj  interface{}
	RespObj     interface{}
}
