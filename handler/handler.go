package handler

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/leopardquict/isw-billpay/codec"
	"github.com/leopardquict/isw-billpay/model"
	"github.com/leopardquict/isw-billpay/store"
	"github.com/shopspring/decimal"
)

// CustomerProfile is what the core system knows about a customer reference.
type CustomerProfile struct {
	FirstName      string
	LastName       string
	OtherName      string
	Email          string
	Phone          string
	ThirdPartyCode string
}

// CustomerLookup resolves a customer reference against the core system.
type CustomerLookup interface {
	LookupCustomer(ctx context.Context, custReference string) (*CustomerProfile, error)
}

type IssueOutcome struct {
	ReceiptNo string
}

// ValueIssuer credits the customer for a settled payment.
type ValueIssuer interface {
	IssueValue(ctx context.Context, custReference string, amount decimal.Decimal) (*IssueOutcome, error)
}

var (
	ErrUpstreamTimeout      = errors.New("upstream call timed out")
	ErrUpstreamLookupFailed = errors.New("customer lookup failed")
	ErrUpstreamIssueFailed  = errors.New("value issuance failed")
)

type Handler struct {
	L         *slog.Logger
	Lookup    CustomerLookup
	Issuer    ValueIssuer
	Processed *store.ProcessedLog
}

func NewHandler(l *slog.Logger, lookup CustomerLookup, issuer ValueIssuer, processed *store.ProcessedLog) *Handler {
	return &Handler{l, lookup, issuer, processed}
}

// BillsRequest serves the aggregator endpoint. Business failures (lookup
// errors, declines, timeouts) still answer HTTP 200 with the failure carried
// in the Status fields; only unclassifiable or unparsable input gets an HTTP
// error status.
func (h *Handler) BillsRequest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.L.Error("Error reading request body", "error", err)
		h.ErrorResponse(w, http.StatusBadRequest, "400", "Error reading request body")
		return
	}

	var resp any

	switch kind := codec.Classify(body); kind {
	case codec.KindCustomerInfo:
		resp, err = h.CustomerInformation(r.Context(), body)
	case codec.KindPaymentNotification:
		resp, err = h.PaymentNotification(r.Context(), body)
	default:
		h.L.Error("Unknown message kind", "error", codec.ErrUnknownMessageKind)
		h.ErrorResponse(w, http.StatusBadRequest, "400", "Unknown message kind")
		return
	}

	if err != nil {
		h.transportError(w, err)
		return
	}

	h.writeXML(w, resp)
}

func (h *Handler) transportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, codec.ErrMalformedDocument):
		h.L.Error("Error decoding request", "error", err)
		h.ErrorResponse(w, http.StatusBadRequest, "400", err.Error())
	case errors.Is(err, codec.ErrSchemaMismatch):
		h.L.Error("Request failed schema validation", "error", err)
		h.ErrorResponse(w, http.StatusBadRequest, "400", err.Error())
	default:
		h.L.Error("Error handling request", "error", err)
		h.ErrorResponse(w, http.StatusInternalServerError, "500", "Error handling request")
	}
}

func (h *Handler) writeXML(w http.ResponseWriter, v any) {
	xmlData, err := codec.Encode(v)

	if err != nil {
		h.L.Error("Error marshalling response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Error marshalling response"))
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write(xmlData)
}

func (h *Handler) ErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	errRes := model.ErrorResponse{
		Code:    code,
		Message: message,
	}

	xmlData, err := xml.Marshal(errRes)

	if err != nil {
		h.L.Error("Error marshalling error", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Error marshalling error"))
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	w.Write(xmlData)
}
