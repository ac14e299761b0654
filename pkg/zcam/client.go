package zcam

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const (
	DefaultTimeout = 10 * time.Second
	DefaultSettle  = 1500 * time.Millisecond
)

// Client talks to the Z CAM HTTP control API. It is not safe for concurrent
// use: the camera keeps one active setting per key, so requests must be
// serialized anyway.
type Client struct {
	Host string

	// Timeout for every single request
	Timeout time.Duration
	// Settle - pause after every successful set request, camera applies
	// new values asynchronously to the HTTP response
	Settle time.Duration

	Log zerolog.Logger

	client *http.Client
}

func NewClient(host string) *Client {
	return &Client{
		Host:    host,
		Timeout: DefaultTimeout,
		Settle:  DefaultSettle,
		Log:     zerolog.Nop(),
	}
}

// CodeError - camera answered with HTTP 200, but with non-zero "code" field
type CodeError struct {
	URL  string
	Code int
}

func (e *CodeError) Error() string {
	return "zcam: wrong code " + strconv.Itoa(e.Code) + " for " + e.URL
}

var ErrNotJSON = errors.New("zcam: response is not a JSON object")

// Get send GET request to endpoint (path with query) and return raw JSON
// object. With checkCode the response must not carry a non-zero "code".
func (c *Client) Get(endpoint string, checkCode bool) ([]byte, error) {
	if c.client == nil || c.client.Timeout != c.Timeout {
		c.client = &http.Client{Timeout: c.Timeout}
	}

	link := "http://" + c.Host + endpoint

	res, err := c.client.Get(link)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	c.Log.Trace().Str("url", link).Int("status", res.StatusCode).Bytes("body", b).Msg("[zcam] response")

	if res.StatusCode != http.StatusOK {
		return nil, errors.New("zcam: wrong response: " + res.Status)
	}

	if !gjson.ValidBytes(b) || !gjson.ParseBytes(b).IsObject() {
		return nil, ErrNotJSON
	}

	if checkCode {
		if code := gjson.GetBytes(b, "code"); code.Exists() && code.Int() != 0 {
			return nil, &CodeError{URL: link, Code: int(code.Int())}
		}
	}

	return b, nil
}

// Set send set request and wait until camera settles. Unlike Get the "code"
// field is required here: the camera confirms every accepted value with code 0.
func (c *Client) Set(key, value string) error {
	endpoint := "/ctrl/set?" + key + "=" + QueryEscape(value)

	b, err := c.Get(endpoint, true)
	if err != nil {
		return err
	}

	if !gjson.GetBytes(b, "code").Exists() {
		return &CodeError{URL: "http://" + c.Host + endpoint, Code: -1}
	}

	if c.Settle > 0 {
		time.Sleep(c.Settle)
	}

	return nil
}

// QueryEscape like url.QueryEscape, but with %20 for spaces, because camera
// doesn't decode "+" in resolution names
func QueryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
