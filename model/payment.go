package model

import "encoding/xml"

// PaymentNotificationRequest is the settled-payment notification sent by the
// aggregator after it has collected funds on the biller's behalf.
type PaymentNotificationRequest struct {
	XMLName         xml.Name `xml:"PaymentNotificationRequest"`
	RouteId         string   `xml:"RouteId"`
	ServiceUrl      string   `xml:"ServiceUrl"`
	ServiceUsername string   `xml:"ServiceUsername"`
	ServicePassword string   `xml:"ServicePassword"`
	FtpUrl          string   `xml:"FtpUrl"`
	FtpUsername     string   `xml:"FtpUsername"`
	FtpPassword     string   `xml:"FtpPassword"`
	Payments        Payments `xml:"Payments"`
}

type PaymentNotificationResponse struct {
	XMLName  xml.Name `xml:"PaymentNotificationResponse"`
	Payments Payments `xml:"Payments"`
}

// Payments wraps the repeated Payment records. The wrapper element must
// render even for a single or empty sequence.
type Payments struct {
	Payment []Payment `xml:"Payment"`
}

// Payment carries a settled transaction in requests and a minimally
// populated acknowledgement in responses. PaymentLogId, Status and
// StatusMessage always render; everything else is omitted when unset.
type Payment struct {
	ProductGroupCode         string       `xml:"ProductGroupCode,omitempty"`
	PaymentLogId             string       `xml:"PaymentLogId"`
	CustReference            string       `xml:"CustReference,omitempty"`
	AlternateCustReference   string       `xml:"AlternateCustReference,omitempty"`
	Amount                   string       `xml:"Amount,omitempty"`
	PaymentStatus            string       `xml:"PaymentStatus,omitempty"`
	PaymentMethod            string       `xml:"PaymentMethod,omitempty"`
	PaymentReference         string       `xml:"PaymentReference,omitempty"`
	TerminalId               string       `xml:"TerminalId,omitempty"`
	ChannelName              string       `xml:"ChannelName,omitempty"`
	Location                 string       `xml:"Location,omitempty"`
	IsReversal               string       `xml:"IsReversal,omitempty"`
	PaymentDate              string       `xml:"PaymentDate,omitempty"`
	SettlementDate           string       `xml:"SettlementDate,omitempty"`
	InstitutionId            string       `xml:"InstitutionId,omitempty"`
	InstitutionName          string       `xml:"InstitutionName,omitempty"`
	BranchName               string       `xml:"BranchName,omitempty"`
	BankName                 string       `xml:"BankName,omitempty"`
	FeeName                  string       `xml:"FeeName,omitempty"`
	CustomerName             string       `xml:"CustomerName,omitempty"`
	OtherCustomerInfo        string       `xml:"OtherCustomerInfo,omitempty"`
	ReceiptNo                string       `xml:"ReceiptNo,omitempty"`
	CollectionsAccount       string       `xml:"CollectionsAccount,omitempty"`
	ThirdPartyCode           string       `xml:"ThirdPartyCode,omitempty"`
	PaymentItems             PaymentItems `xml:"PaymentItems"`
	BankCode                 string       `xml:"BankCode,omitempty"`
	CustomerAddress          string       `xml:"CustomerAddress,omitempty"`
	CustomerPhoneNumber      string       `xml:"CustomerPhoneNumber,omitempty"`
	DepositorName            string       `xml:"DepositorName,omitempty"`
	DepositSlipNumber        string       `xml:"DepositSlipNumber,omitempty"`
	PaymentCurrency          string       `xml:"PaymentCurrency,omitempty"`
	OriginalPaymentLogId     string       `xml:"OriginalPaymentLogId,omitempty"`
	OriginalPaymentReference string       `xml:"OriginalPaymentReference,omitempty"`
	Teller                   string       `xml:"Teller,omitempty"`
	Status                   string       `xml:"Status"`
	StatusMessage            string       `xml:"StatusMessage"`
}

type PaymentItems struct {
	PaymentItem []PaymentItem `xml:"PaymentItem"`
}

type PaymentItem struct {
	ItemName        string `xml:"ItemName,omitempty"`
	ItemCode        string `xml:"ItemCode,omitempty"`
	ItemAmount      string `xml:"ItemAmount,omitempty"`
	LeadBankCode    string `xml:"LeadBankCode,omitempty"`
	LeadBankCbnCode string `xml:"LeadBankCbnCode,omitempty"`
	LeadBankName    string `xml:"LeadBankName,omitempty"`
	CategoryCode    string `xml:"CategoryCode,omitempty"`
	CategoryName    string `xml:"CategoryName,omitempty"`
	ItemQuantity    string `xml:"ItemQuantity,omitempty"`
}
