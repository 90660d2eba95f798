package constant

const (
	// In-band status codes carried in every response record. The protocol
	// signals business failure through these, not through HTTP status.
	StatusSuccess = "0"
	StatusFailed  = "1"

	MsgSuccessful = "Successful"

	BillsPaymentPath = "/isw-bills-payment"
)
