package handler

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/leopardquict/isw-billpay/config"
	"github.com/shopspring/decimal"
)

type customerEnquiryRequest struct {
	XMLName       xml.Name `xml:"CustomerEnquiryRequest"`
	ChannelRef    string   `xml:"ChannelRef"`
	CustReference string   `xml:"CustReference"`
}

type customerEnquiryResponse struct {
	XMLName        xml.Name `xml:"CustomerEnquiryResponse"`
	Status         string   `xml:"Status"`
	Message        string   `xml:"Message"`
	FirstName      string   `xml:"FirstName"`
	LastName       string   `xml:"LastName"`
	OtherName      string   `xml:"OtherName"`
	Email          string   `xml:"Email"`
	Phone          string   `xml:"Phone"`
	ThirdPartyCode string   `xml:"ThirdPartyCode"`
}

type walletCreditRequest struct {
	XMLName       xml.Name `xml:"WalletCreditRequest"`
	ChannelRef    string   `xml:"ChannelRef"`
	CustReference string   `xml:"CustReference"`
	Amount        string   `xml:"Amount"`
}

type walletCreditResponse struct {
	XMLName   xml.Name `xml:"WalletCreditResponse"`
	Status    string   `xml:"Status"`
	Message   string   `xml:"Message"`
	ReceiptNo string   `xml:"ReceiptNo"`
}

// CoreClient talks to the core customer/wallet system over its XML API. It
// implements CustomerLookup and ValueIssuer.
type CoreClient struct {
	L           *slog.Logger
	CustomerURL string
	WalletURL   string
	Client      *http.Client
}

func NewCoreClient(l *slog.Logger, cfg config.CoreConfig) *CoreClient {
	return &CoreClient{
		L:           l,
		CustomerURL: cfg.CustomerURL,
		WalletURL:   cfg.WalletURL,
		Client: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

func (c *CoreClient) LookupCustomer(ctx context.Context, custReference string) (*CustomerProfile, error) {
	enquiry := customerEnquiryRequest{
		ChannelRef:    "ISW" + uuid.NewString(),
		CustReference: custReference,
	}

	var resp customerEnquiryResponse

	if err := c.post(ctx, c.CustomerURL, enquiry, &resp); err != nil {
		if errors.Is(err, ErrUpstreamTimeout) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamLookupFailed, err)
	}

	if resp.Status != "0" {
		c.L.Error("Core rejected customer enquiry", "custReference", custReference, "status", resp.Status, "message", resp.Message)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamLookupFailed, resp.Message)
	}

	return &CustomerProfile{
		FirstName:      resp.FirstName,
		LastName:       resp.LastName,
		OtherName:      resp.OtherName,
		Email:          resp.Email,
		Phone:          resp.Phone,
		ThirdPartyCode: resp.ThirdPartyCode,
	}, nil
}

func (c *CoreClient) IssueValue(ctx context.Context, custReference string, amount decimal.Decimal) (*IssueOutcome, error) {
	credit := walletCreditRequest{
		ChannelRef:    "ISW" + uuid.NewString(),
		CustReference: custReference,
		Amount:        amount.StringFixed(2),
	}

	var resp walletCreditResponse

	if err := c.post(ctx, c.WalletURL, credit, &resp); err != nil {
		if errors.Is(err, ErrUpstreamTimeout) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamIssueFailed, err)
	}

	if resp.Status != "0" {
		c.L.Error("Core rejected wallet credit", "custReference", custReference, "status", resp.Status, "message", resp.Message)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamIssueFailed, resp.Message)
	}

	return &IssueOutcome{ReceiptNo: resp.ReceiptNo}, nil
}

func (c *CoreClient) post(ctx context.Context, endpoint string, in any, out any) error {
	xmlData, err := xml.Marshal(in)

	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(xmlData))

	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/xml")

	resp, err := c.Client.Do(req)

	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
		}
		return err
	}

	defer resp.Body.Close()

	responseBody := new(bytes.Buffer)
	responseBody.ReadFrom(resp.Body)

	if err := xml.Unmarshal(responseBody.Bytes(), out); err != nil {
		return err
	}

	return nil
}
