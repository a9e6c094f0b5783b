package web

import (
	"errors"

	"github.com/example/roomportal/internal/api"
)

// failureMessage maps an operation error onto the text shown to the visitor.
// Server-side rejections are shown verbatim since the remote service already
// phrases them for end users; everything else gets a localized category
// message. The second result reports that the session is no longer accepted
// and the visitor must sign in again.
func failureMessage(err error, text map[string]string) (string, bool) {
	if errors.Is(err, api.ErrUnauthenticated) {
		return "", true
	}

	var serverErr *api.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message, false
	}
	var shapeErr *api.ShapeError
	if errors.As(err, &shapeErr) {
		return text["error.shape"], false
	}
	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return text["error.transport"], false
	}
	return text["error.unexpected"], false
}
