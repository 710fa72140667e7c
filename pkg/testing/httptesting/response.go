package httptesting

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

func BuildResponse(code int, payload []byte) *http.Response {
	return &http.Response{
		StatusCode:    code,
		Status:        http.StatusText(code),
		Header:        http.Header{},
		Body:          io.NopCloser(bytes.NewReader(payload)),
		ContentLength: int64(len(payload)),
	}
}

func BuildResponseString(code int, payload string) *http.Response {
	b := []byte(payload)
	return &http.Response{
		StatusCode: code,
		Status:     http.StatusText(code),
		Header:     http.Header{},
		Body: io.NopCloser(
			strings.NewReader(payload),
		),
		ContentLength: int64(len(b)),
	}
}

func BuildResponseJson(code int, payload interface{}) *http.Response {
	data, err := json.Marshal(payload)
	if err != nil {
		return BuildResponseString(http.StatusInternalServerError, `{error: "httptesting.MockTransport error calling json.Marshal()"}`)
	}

	resp := BuildResponse(code, data)
	SetHeader(resp, "Content-Type", "application/json")
	return resp
}

func SetHeader(resp *http.Response, name string, value string) *http.Response {
	if resp.Header == nil {
		resp.Header = http.Header{}
	}

	resp.Header.Set(name, value)
	return resp
}

// RespondString returns a handler replying with a fixed status and body.
func RespondString(code int, payload string) RoundTripFunc {
	return func(req *http.Request) (*http.Response, error) {
		resp := BuildResponseString(code, payload)
		resp.Request = req
		return resp, nil
	}
}

// RespondError returns a handler that fails the round trip with err.
func RespondError(err error) RoundTripFunc {
	return func(req *http.Request) (*http.Response, error) {
		return nil, err
	}
}
