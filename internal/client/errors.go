package client

import "fmt"

// RemoteError is a non-2xx response from the backend. All rejections are
// surfaced uniformly; the status code is carried for diagnostics, not
// interpreted further by this client.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.StatusCode, e.Message)
}

// ConnectivityError is a transport-level failure: the request never
// produced an HTTP response.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}
