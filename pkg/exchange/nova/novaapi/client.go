package novaapi

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"

	"github.com/c9s/novaex/pkg/nonce"
)

const defaultHTTPTimeout = time.Second * 60

// RestBaseURL is the versioned endpoint prefix of the NovaExchange remote API
// See https://novaexchange.com/remote/faq/
const RestBaseURL = "https://novaexchange.com/remote/v2"

// Credentials holds the api key pair. It can not be changed once the client is created.
type Credentials struct {
	key, secret string
}

func (c Credentials) Key() string {
	return c.key
}

func (c Credentials) validate() error {
	if len(c.key) == 0 {
		return &AuthConfigurationError{Field: "key"}
	}

	if len(c.secret) == 0 {
		return &AuthConfigurationError{Field: "secret"}
	}

	return nil
}

type RestClient struct {
	baseURL string
	client  *http.Client

	credentials Credentials
	nonce       nonce.Source
}

func NewClient(key, secret string) *RestClient {
	return NewClientWithHttpClient(RestBaseURL, &http.Client{
		Timeout: defaultHTTPTimeout,
	}, key, secret)
}

func NewClientWithHttpClient(baseURL string, httpClient *http.Client, key, secret string) *RestClient {
	u, err := url.Parse(baseURL)
	if err != nil {
		panic(err)
	}

	if u.Scheme == "" || u.Host == "" {
		panic(errors.Errorf("invalid base url %q", baseURL))
	}

	return &RestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		credentials: Credentials{
			key: key,
			// pragma: allowlist nextline secret
			secret: secret,
		},
		nonce: nonce.NewUnixSecondNonce(),
	}
}

// SetNonceSource replaces the nonce generator used for private requests.
func (c *RestClient) SetNonceSource(src nonce.Source) {
	c.nonce = src
}

func (c *RestClient) BaseURL() string {
	return c.baseURL
}

func (c *RestClient) Credentials() Credentials {
	return c.credentials
}

// Dispatch sends the request for the given method path and returns the raw response body.
//
// The first path segment of method decides how the request is sent:
// "market*" segments go out as unauthenticated GET requests,
// segments from the private method set go out as signed POST requests.
// Anything else is rejected with a *UsageError before any network call.
func (c *RestClient) Dispatch(ctx context.Context, method string, params url.Values) ([]byte, error) {
	var req *http.Request
	var err error

	switch Classify(method) {
	case EndpointMarket:
		req, err = c.NewRequest(ctx, method)
	case EndpointPrivate:
		req, err = c.NewAuthenticatedRequest(ctx, method, params)
	default:
		return nil, newUsageError(method, "method %q is neither a market method nor a private method", method)
	}

	if err != nil {
		return nil, err
	}

	response, err := c.SendRequest(req)
	if err != nil {
		return nil, err
	}

	return response.Body, nil
}

// NewRequest creates the unauthenticated GET request for a market method.
func (c *RestClient) NewRequest(ctx context.Context, method string) (*http.Request, error) {
	if Classify(method) != EndpointMarket {
		return nil, newUsageError(method, "method %q is not a market method", method)
	}

	return c.newRequest(ctx, "GET", method, c.baseURL+"/"+method+"/", nil)
}

// NewAuthenticatedRequest creates the signed POST request for a private method.
// params is copied, the caller's values are never modified.
func (c *RestClient) NewAuthenticatedRequest(ctx context.Context, method string, params url.Values) (*http.Request, error) {
	if Classify(method) != EndpointPrivate {
		return nil, newUsageError(method, "method %q is not a private method", method)
	}

	if err := c.credentials.validate(); err != nil {
		return nil, err
	}

	canonicalURL := c.baseURL + "/private/" + method + "/?nonce=" + c.nonce.GetString()

	form := url.Values{}
	for k, vs := range params {
		form[k] = append([]string(nil), vs...)
	}

	form.Set("apikey", c.credentials.key)
	form.Set("signature", Sign(canonicalURL, c.credentials.secret))

	req, err := c.newRequest(ctx, "POST", method, canonicalURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

// newRequest builds the request for rawURL and makes sure net/url does not re-encode it,
// the signed string and the requested string must be identical.
func (c *RestClient) newRequest(ctx context.Context, httpMethod, method, rawURL string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, httpMethod, rawURL, body)
	if err != nil {
		return nil, newUsageError(method, "unable to build url for method %q: %v", method, err)
	}

	if req.URL.String() != rawURL {
		return nil, newUsageError(method, "method %q contains characters that would be re-encoded in the request url", method)
	}

	return req, nil
}

// SendRequest sends the request to the API server and reads the whole response.
// Network failures and non-2xx responses are returned as *TransportError.
func (c *RestClient) SendRequest(req *http.Request) (*requestgen.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}

	defer resp.Body.Close()

	response, err := requestgen.NewResponse(resp)
	if err != nil {
		return response, &TransportError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Err:        errors.Wrap(err, "unable to read response body"),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return response, &TransportError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       response.Body,
		}
	}

	return response, nil
}

// Sign returns the base64 encoded HMAC-SHA512 digest of payload keyed by secret.
func Sign(payload string, secret string) string {
	var sig = hmac.New(sha512.New, []byte(secret))
	_, err := sig.Write([]byte(payload))
	if err != nil {
		return ""
	}

	return base64.StdEncoding.EncodeToString(sig.Sum(nil))
}
