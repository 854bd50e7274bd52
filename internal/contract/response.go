package contract

import "github.com/eigerco/tribunal/internal/funds"

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is what a successful call hands back to the host: transfer
// instructions to execute and audit attributes.
type Response struct {
	Messages   []funds.Transfer `json:"messages"`
	Attributes []Attribute      `json:"attributes"`
}

// NewResponse starts a response tagged with action.
func NewResponse(action string) Response {
	return Response{Attributes: []Attribute{{Key: "action", Value: action}}}
}

func (r Response) AddMessage(t funds.Transfer) Response {
	r.Messages = append(r.Messages, t)
	return r
}

func (r Response) AddAttribute(key, value string) Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// Attribute returns the first value stored under key.
func (r Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
