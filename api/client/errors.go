package client

// ErrSendFailed is the message of every ClientError.
const ErrSendFailed = "Failed to send request to OpenAI API"

// ClientError reports an exchange that could not be completed: the request
// could not be built, the transport failed, or the reply was not usable JSON.
// Upstream errors delivered in a readable body are response.Error values.
type ClientError struct {
	Message string
	Err     error
}

func newClientError(err error) *ClientError {
	return &ClientError{Message: ErrSendFailed, Err: err}
}

func (e *ClientError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ClientError) Unwrap() error {
	return e.Err
}
