package zcam

import "github.com/tidwall/gjson"

const (
	KeyMovfmt     = "movfmt"
	KeyResolution = "resolution"
	KeyProjectFPS = "project_fps"
	KeyMovVFR     = "movvfr"
)

type Info struct {
	Model    string
	SW       string
	NickName string
	// Formats - native movfmt list from feature.snapSupportFmt.fmt
	Formats []string
}

// Option - answer for /ctrl/get?k=key
type Option struct {
	Code  *int
	Value string
	Opts  []string
}

// Stream - geometry of one of camera output streams, nil fields if camera
// didn't report them
type Stream struct {
	Width  *int
	Height *int
}

func (c *Client) GetInfo() (*Info, error) {
	b, err := c.Get("/info", false)
	if err != nil {
		return nil, err
	}
	return ParseInfo(b), nil
}

func (c *Client) GetOption(key string) (*Option, error) {
	b, err := c.Get("/ctrl/get?k="+QueryEscape(key), true)
	if err != nil {
		return nil, err
	}
	return ParseOption(b), nil
}

func (c *Client) SetOption(key, value string) error {
	return c.Set(key, value)
}

func (c *Client) GetStream(index string) (*Stream, error) {
	b, err := c.Get("/ctrl/stream_setting?index="+QueryEscape(index)+"&action=query", false)
	if err != nil {
		return nil, err
	}
	return ParseStream(b), nil
}

func (c *Client) GetMovfmt() (*Option, error) {
	return c.GetOption(KeyMovfmt)
}

func (c *Client) GetResolutions() ([]string, error) {
	opt, err := c.GetOption(KeyResolution)
	if err != nil {
		return nil, err
	}
	return opt.Opts, nil
}

func (c *Client) SetResolution(resolution string) error {
	return c.Set(KeyResolution, resolution)
}

func (c *Client) GetProjectFPS() (*Option, error) {
	return c.GetOption(KeyProjectFPS)
}

func (c *Client) SetProjectFPS(fps string) error {
	return c.Set(KeyProjectFPS, fps)
}

func (c *Client) GetMovVFR() (*Option, error) {
	return c.GetOption(KeyMovVFR)
}

// ParseInfo never fails, missing or malformed fields stay empty
func ParseInfo(b []byte) *Info {
	res := gjson.ParseBytes(b)
	return &Info{
		Model:    str(res.Get("model")),
		SW:       str(res.Get("sw")),
		NickName: str(res.Get("nickName")),
		Formats:  strs(res.Get("feature.snapSupportFmt.fmt")),
	}
}

func ParseOption(b []byte) *Option {
	res := gjson.ParseBytes(b)

	opt := &Option{
		Value: str(res.Get("value")),
		Opts:  strs(res.Get("opts")),
	}

	if code := res.Get("code"); code.Type == gjson.Number {
		i := int(code.Int())
		opt.Code = &i
	}

	return opt
}

func ParseStream(b []byte) *Stream {
	res := gjson.ParseBytes(b)
	return &Stream{
		Width:  num(res.Get("width")),
		Height: num(res.Get("height")),
	}
}

// str accepts numbers too, some firmwares report numeric values without quotes
func str(v gjson.Result) string {
	switch v.Type {
	case gjson.String, gjson.Number:
		return v.String()
	}
	return ""
}

func strs(v gjson.Result) []string {
	items := []string{}
	if !v.IsArray() {
		return items
	}
	for _, item := range v.Array() {
		switch item.Type {
		case gjson.String, gjson.Number:
			items = append(items, item.String())
		}
	}
	return items
}

func num(v gjson.Result) *int {
	if v.Type != gjson.Number {
		return nil
	}
	i := int(v.Int())
	return &i
}
