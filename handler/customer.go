package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/leopardquict/isw-billpay/codec"
	"github.com/leopardquict/isw-billpay/constant"
	"github.com/leopardquict/isw-billpay/model"
)

// CustomerInformation handles a customer-reference lookup. The response
// always carries exactly one Customer record; lookup failures are reported
// in its Status fields, never as a transport error.
func (h *Handler) CustomerInformation(ctx context.Context, doc []byte) (*model.CustomerInformationResponse, error) {
	req, err := codec.DecodeCustomerInfo(doc)

	if err != nil {
		return nil, err
	}

	if req.CustReference == "" {
		return nil, fmt.Errorf("%w: CustReference missing", codec.ErrSchemaMismatch)
	}

	h.L.Info("Customer information request", "custReference", req.CustReference, "merchantReference", req.MerchantReference)

	customer := model.Customer{
		CustReference: req.CustReference,
	}

	profile, err := h.Lookup.LookupCustomer(ctx, req.CustReference)

	switch {
	case err == nil:
		customer.Status = constant.StatusSuccess
		customer.StatusMessage = constant.MsgSuccessful
		customer.FirstName = profile.FirstName
		customer.LastName = profile.LastName
		customer.OtherName = profile.OtherName
		customer.Email = profile.Email
		customer.Phone = profile.Phone
		customer.ThirdPartyCode = profile.ThirdPartyCode

	case errors.Is(err, ErrUpstreamTimeout):
		h.L.Error("Customer lookup timed out", "custReference", req.CustReference, "error", err)
		customer.Status = constant.StatusFailed
		customer.StatusMessage = "Customer lookup timed out"

	default:
		h.L.Error("Customer lookup failed", "custReference", req.CustReference, "error", err)
		customer.Status = constant.StatusFailed
		customer.StatusMessage = "Customer lookup failed"
	}

	return &model.CustomerInformationResponse{
		MerchantReference: req.MerchantReference,
		Customers: model.Customers{
			Customer: []model.Customer{customer},
		},
	}, nil
}
