package codec_test

import (
	"strings"
	"testing"

	"github.com/leopardquict/isw-billpay/codec"
	"github.com/leopardquict/isw-billpay/model"
	"github.com/stretchr/testify/require"
)

const customerInfoDoc = `<CustomerInformationRequest>
<MerchantReference>4163</MerchantReference>
<CustReference>ABC123</CustReference>
<ServiceUsername>wsuser</ServiceUsername>
<ServicePassword>wspass</ServicePassword>
<FtpUsername>ftpuser</FtpUsername>
<FtpPassword>ftppass</FtpPassword>
</CustomerInformationRequest>`

const paymentDoc = `<PaymentNotificationRequest>
<RouteId>GTB</RouteId>
<ServiceUrl>http://aggregator.example/notify</ServiceUrl>
<ServiceUsername>wsuser</ServiceUsername>
<ServicePassword>wspass</ServicePassword>
<FtpUrl>ftp://aggregator.example</FtpUrl>
<FtpUsername>ftpuser</FtpUsername>
<FtpPassword>ftppass</FtpPassword>
<Payments>
<Payment>
<ProductGroupCode>HTTPGENERICv31</ProductGroupCode>
<PaymentLogId>3193831</PaymentLogId>
<CustReference>ABC123</CustReference>
<Amount>500.00</Amount>
<PaymentMethod>Cash</PaymentMethod>
<PaymentReference>GTB|WEB|3FDC|20230905|001</PaymentReference>
<TerminalId>3FDC0001</TerminalId>
<ChannelName>Bank Branch</ChannelName>
<IsReversal>False</IsReversal>
<PaymentDate>09/05/2023 09:16:21</PaymentDate>
<SettlementDate>09/06/2023 00:00:00</SettlementDate>
<InstitutionId>3FDC</InstitutionId>
<InstitutionName>Guaranty Trust Bank</InstitutionName>
<BranchName>Head Office</BranchName>
<BankName>Guaranty Trust Bank</BankName>
<PaymentCurrency>566</PaymentCurrency>
<PaymentItems>
<PaymentItem>
<ItemName>Airtime</ItemName>
<ItemCode>01</ItemCode>
<ItemAmount>500.00</ItemAmount>
<ItemQuantity>1</ItemQuantity>
</PaymentItem>
</PaymentItems>
</Payment>
</Payments>
</PaymentNotificationRequest>`

func TestClassify(t *testing.T) {
	require.Equal(t, codec.KindCustomerInfo, codec.Classify([]byte(customerInfoDoc)))
	require.Equal(t, codec.KindPaymentNotification, codec.Classify([]byte(paymentDoc)))
	require.Equal(t, codec.KindUnknown, codec.Classify([]byte(`<SomethingElse></SomethingElse>`)))
	require.Equal(t, codec.KindUnknown, codec.Classify([]byte(`not xml at all`)))
}

func TestDecodeCustomerInfo(t *testing.T) {
	req, err := codec.DecodeCustomerInfo([]byte(customerInfoDoc))
	require.NoError(t, err)

	require.Equal(t, "4163", req.MerchantReference)
	require.Equal(t, "ABC123", req.CustReference)
	require.Equal(t, "wsuser", req.ServiceUsername)
	require.Equal(t, "ftppass", req.FtpPassword)
}

func TestDecodePaymentNotification(t *testing.T) {
	req, err := codec.DecodePaymentNotification([]byte(paymentDoc))
	require.NoError(t, err)

	require.Equal(t, "GTB", req.RouteId)
	require.Len(t, req.Payments.Payment, 1)

	payment := req.Payments.Payment[0]
	require.Equal(t, "3193831", payment.PaymentLogId)
	require.Equal(t, "ABC123", payment.CustReference)
	require.Equal(t, "500.00", payment.Amount)
	require.Equal(t, "566", payment.PaymentCurrency)

	require.Len(t, payment.PaymentItems.PaymentItem, 1)
	require.Equal(t, "Airtime", payment.PaymentItems.PaymentItem[0].ItemName)
	require.Equal(t, "500.00", payment.PaymentItems.PaymentItem[0].ItemAmount)
}

func TestDecodeIgnoresUnknownElements(t *testing.T) {
	doc := `<CustomerInformationRequest>
<CustReference>ABC123</CustReference>
<SomethingNew>ignored</SomethingNew>
</CustomerInformationRequest>`

	req, err := codec.DecodeCustomerInfo([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, "ABC123", req.CustReference)
}

func TestDecodeMalformed(t *testing.T) {
	doc := `<CustomerInformationRequest><CustReference>ABC123`

	_, err := codec.DecodeCustomerInfo([]byte(doc))
	require.ErrorIs(t, err, codec.ErrMalformedDocument)
}

func TestDecodeWrongRootElement(t *testing.T) {
	doc := `<WrongRoot><CustReference>ABC123</CustReference></WrongRoot>`

	_, err := codec.DecodeCustomerInfo([]byte(doc))
	require.ErrorIs(t, err, codec.ErrSchemaMismatch)
}

func TestRoundTripPaymentNotification(t *testing.T) {
	req, err := codec.DecodePaymentNotification([]byte(paymentDoc))
	require.NoError(t, err)

	out, err := codec.Encode(req)
	require.NoError(t, err)

	again, err := codec.DecodePaymentNotification(out)
	require.NoError(t, err)
	require.Equal(t, req, again)
}

func TestEncodeIdempotent(t *testing.T) {
	resp := &model.PaymentNotificationResponse{
		Payments: model.Payments{
			Payment: []model.Payment{{
				PaymentLogId:  "3193831",
				Status:        "0",
				StatusMessage: "Successful",
			}},
		},
	}

	first, err := codec.Encode(resp)
	require.NoError(t, err)

	second, err := codec.Encode(resp)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEncodeSingleCustomerKeepsWrapper(t *testing.T) {
	resp := &model.CustomerInformationResponse{
		MerchantReference: "4163",
		Customers: model.Customers{
			Customer: []model.Customer{{
				Status:        "0",
				CustReference: "ABC123",
				FirstName:     "John",
				StatusMessage: "Successful",
			}},
		},
	}

	out, err := codec.Encode(resp)
	require.NoError(t, err)

	s := string(out)
	require.Contains(t, s, "<Customers><Customer>")
	require.Contains(t, s, "</Customer></Customers>")
}

func TestEncodeEmptySequenceKeepsContainer(t *testing.T) {
	out, err := codec.Encode(&model.PaymentNotificationResponse{})
	require.NoError(t, err)

	require.Contains(t, string(out), "<Payments>")
	require.Contains(t, string(out), "</Payments>")
}

func TestEncodeOmitsUnsetOptionalFields(t *testing.T) {
	resp := &model.CustomerInformationResponse{
		Customers: model.Customers{
			Customer: []model.Customer{{
				Status:        "1",
				CustReference: "ABC123",
				StatusMessage: "Customer lookup failed",
			}},
		},
	}

	out, err := codec.Encode(resp)
	require.NoError(t, err)

	s := string(out)
	require.NotContains(t, s, "FirstName")
	require.NotContains(t, s, "Email")
	require.NotContains(t, s, "MerchantReference")
	require.Contains(t, s, "<Status>1</Status>")
	require.Contains(t, s, "<StatusMessage>Customer lookup failed</StatusMessage>")
}

func TestEncodeCanonicalOrder(t *testing.T) {
	// Input element order differs from the schema; output must follow the
	// schema's declared order.
	doc := `<CustomerInformationRequest>
<CustReference>ABC123</CustReference>
<MerchantReference>4163</MerchantReference>
</CustomerInformationRequest>`

	req, err := codec.DecodeCustomerInfo([]byte(doc))
	require.NoError(t, err)

	out, err := codec.Encode(req)
	require.NoError(t, err)

	s := string(out)
	require.Less(t, strings.Index(s, "<MerchantReference>"), strings.Index(s, "<CustReference>"))
}
