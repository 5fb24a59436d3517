package grist

import "github.com/reedery/AirGrist/utils"

// APIError is returned for every response outside of 2XX, it carries the
// status code and the raw body.
type APIError = utils.StatusError

// TransportError is returned when no response was received at all.
type TransportError = utils.TransportError

func IsStatus(err error, code int) bool {
	return utils.IsStatus(err, code)
}
