package model

import "encoding/xml"

// ErrorResponse is the body returned for transport-level failures, where the
// request could not be classified or decoded and no typed response schema
// applies.
type ErrorResponse struct {
	XMLName xml.Name `xml:"Error"`
	Code    string   `xml:"Code"`
	Message string   `xml:"Message"`
}
