package model

import "encoding/xml"

// CustomerInformationRequest is the customer-reference lookup message sent by
// the aggregator. The credential fields are part of the wire contract but are
// not used by business logic.
type CustomerInformationRequest struct {
	XMLName           xml.Name `xml:"CustomerInformationRequest"`
	MerchantReference string   `xml:"MerchantReference"`
	CustReference     string   `xml:"CustReference"`
	ServiceUsername   string   `xml:"ServiceUsername"`
	ServicePassword   string   `xml:"ServicePassword"`
	FtpUsername       string   `xml:"FtpUsername"`
	FtpPassword       string   `xml:"FtpPassword"`
}

type CustomerInformationResponse struct {
	XMLName           xml.Name  `xml:"CustomerInformationResponse"`
	MerchantReference string    `xml:"MerchantReference,omitempty"`
	Customers         Customers `xml:"Customers"`
}

// Customers is the container element wrapping the repeated Customer records.
// It is a struct, not a nested tag, so the wrapper renders even when empty.
type Customers struct {
	Customer []Customer `xml:"Customer"`
}

type Customer struct {
	Status         string `xml:"Status"`
	CustReference  string `xml:"CustReference"`
	FirstName      string `xml:"FirstName,omitempty"`
	LastName       string `xml:"LastName,omitempty"`
	OtherName      string `xml:"OtherName,omitempty"`
	Email          string `xml:"Email,omitempty"`
	Phone          string `xml:"Phone,omitempty"`
	ThirdPartyCode string `xml:"ThirdPartyCode,omitempty"`
	StatusMessage  string `xml:"StatusMessage"`
}
