package codec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/leopardquict/isw-billpay/model"
)

var (
	ErrMalformedDocument  = errors.New("malformed xml document")
	ErrUnknownMessageKind = errors.New("unknown message kind")
	ErrSchemaMismatch     = errors.New("schema mismatch")
)

// Kind identifies which of the two supported request messages a document is.
type Kind int

const (
	KindUnknown Kind = iota
	KindCustomerInfo
	KindPaymentNotification
)

func (k Kind) String() string {
	switch k {
	case KindCustomerInfo:
		return "CustomerInformationRequest"
	case KindPaymentNotification:
		return "PaymentNotificationRequest"
	}
	return "Unknown"
}

var (
	customerInfoMarker = []byte("CustomerInformationRequest")
	paymentMarker      = []byte("PaymentNotificationRequest")
)

// Classify picks the message kind by searching for the top-level element
// name. This is cheaper than a full parse; the document is only decoded once
// the kind is known.
func Classify(doc []byte) Kind {
	switch {
	case bytes.Contains(doc, customerInfoMarker):
		return KindCustomerInfo
	case bytes.Contains(doc, paymentMarker):
		return KindPaymentNotification
	}
	return KindUnknown
}

func DecodeCustomerInfo(doc []byte) (*model.CustomerInformationRequest, error) {
	var req model.CustomerInformationRequest
	if err := decode(doc, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func DecodePaymentNotification(doc []byte) (*model.PaymentNotificationRequest, error) {
	var req model.PaymentNotificationRequest
	if err := decode(doc, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// decode is a permissive read: elements the schema does not know are
// ignored. Syntax errors mean the document is not XML at all; anything else
// from the unmarshaller means the shape does not match the schema.
func decode(doc []byte, v any) error {
	err := xml.Unmarshal(doc, v)
	if err == nil {
		return nil
	}

	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
}

// Encode renders a typed response in canonical schema order. Output is
// deterministic: the same value always encodes to the same bytes.
func Encode(v any) ([]byte, error) {
	out, err := xml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return out, nil
}
