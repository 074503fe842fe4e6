// Package response turns the JSON documents returned by the responses
// endpoint into one of three outcomes: Success, Error or Partial.
package response

import "encoding/json"

const (
	DefaultErrorMessage = "Unknown error"
	DefaultErrorCode    = "unknown"
	DefaultEffort       = "unknown"
	ReasonNoText        = "No text content available"
)

// Response is implemented by Success, Error and Partial only.
type Response interface {
	// RawJSON returns the document exactly as it was received.
	RawJSON() json.RawMessage
	response()
}

// Success is a completed answer.
type Success struct {
	Text            string
	ReasoningEffort string
	ReasoningTrace  string
	InputTokens     int
	OutputTokens    int
	Raw             json.RawMessage
}

// Error is a failure the upstream reported inside a well-formed reply.
type Error struct {
	Message string
	Code    string
	Raw     json.RawMessage
}

// Partial is a reply in which no usable text could be found.
type Partial struct {
	AvailableText string
	Reason        string
	Raw           json.RawMessage
}

var (
	_ Response = Success{}
	_ Response = Error{}
	_ Response = Partial{}
)

func (s Success) RawJSON() json.RawMessage { return s.Raw }
func (e Error) RawJSON() json.RawMessage   { return e.Raw }
func (p Partial) RawJSON() json.RawMessage { return p.Raw }

func (Success) response() {}
func (Error) response()   {}
func (Partial) response() {}

// TotalTokens is the sum of input and output tokens.
func (s Success) TotalTokens() int {
	return s.InputTokens + s.OutputTokens
}

// IsSuccess reports whether r is a Success.
func IsSuccess(r Response) bool {
	_, ok := r.(Success)
	return ok
}

// TextContent returns the answer text of a Success, the available text of a
// Partial and the empty string for an Error.
func TextContent(r Response) string {
	switch v := r.(type) {
	case Success:
		return v.Text
	case Partial:
		return v.AvailableText
	case Error:
		return ""
	}
	return ""
}
