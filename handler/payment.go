package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/leopardquict/isw-billpay/codec"
	"github.com/leopardquict/isw-billpay/constant"
	"github.com/leopardquict/isw-billpay/model"
	"github.com/shopspring/decimal"
)

// PaymentNotification handles a settled-payment notification. Only the first
// Payment in the batch is processed and acknowledged; the aggregator does
// not send multi-payment batches on this route. Re-delivered notifications
// for a log id already given value are acknowledged without crediting again.
func (h *Handler) PaymentNotification(ctx context.Context, doc []byte) (*model.PaymentNotificationResponse, error) {
	req, err := codec.DecodePaymentNotification(doc)

	if err != nil {
		return nil, err
	}

	if len(req.Payments.Payment) == 0 {
		return nil, fmt.Errorf("%w: Payments has no Payment entries", codec.ErrSchemaMismatch)
	}

	first := req.Payments.Payment[0]

	if first.CustReference == "" {
		return nil, fmt.Errorf("%w: CustReference missing", codec.ErrSchemaMismatch)
	}

	if first.PaymentLogId == "" {
		return nil, fmt.Errorf("%w: PaymentLogId missing", codec.ErrSchemaMismatch)
	}

	amount, err := decimal.NewFromString(first.Amount)

	if err != nil {
		return nil, fmt.Errorf("%w: Amount %q is not a decimal", codec.ErrSchemaMismatch, first.Amount)
	}

	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: Amount %q is negative", codec.ErrSchemaMismatch, first.Amount)
	}

	h.L.Info("Payment notification", "paymentLogId", first.PaymentLogId, "custReference", first.CustReference, "amount", first.Amount)

	ack := model.Payment{
		PaymentLogId: first.PaymentLogId,
	}

	if h.Processed.Mark(first.PaymentLogId) {
		h.L.Info("Duplicate payment notification", "paymentLogId", first.PaymentLogId)
		ack.Status = constant.StatusSuccess
		ack.StatusMessage = "Duplicate payment notification"
		return paymentAck(ack), nil
	}

	outcome, err := h.Issuer.IssueValue(ctx, first.CustReference, amount)

	switch {
	case err == nil:
		h.L.Info("Payment value issued", "paymentLogId", first.PaymentLogId, "receiptNo", outcome.ReceiptNo)
		ack.Status = constant.StatusSuccess
		ack.StatusMessage = constant.MsgSuccessful
		ack.ReceiptNo = outcome.ReceiptNo

	case errors.Is(err, ErrUpstreamTimeout):
		h.Processed.Forget(first.PaymentLogId)
		h.L.Error("Value issuance timed out", "paymentLogId", first.PaymentLogId, "error", err)
		ack.Status = constant.StatusFailed
		ack.StatusMessage = "Value issuance timed out"

	default:
		h.Processed.Forget(first.PaymentLogId)
		h.L.Error("Value issuance failed", "paymentLogId", first.PaymentLogId, "error", err)
		ack.Status = constant.StatusFailed
		ack.StatusMessage = "Value issuance failed"
	}

	return paymentAck(ack), nil
}

func paymentAck(ack model.Payment) *model.PaymentNotificationResponse {
	return &model.PaymentNotificationResponse{
		Payments: model.Payments{
			Payment: []model.Payment{ack},
		},
	}
}
