package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestCreatePayment() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal(RoutePayment, r.URL.Path)
		s.Equal("test-key", r.Header.Get("x-api-key"))
		s.Equal("application/json", r.Header.Get("Content-Type"))

		var req map[string]any
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("usd", req["price_currency"])
		s.Equal("USDTBSC", req["pay_currency"])
		s.NotEmpty(req["order_id"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		// payment_id приходит от шлюза числом.
		_, wErr := w.Write([]byte(`{
			"payment_id": 5077125051,
			"payment_status": "waiting",
			"pay_address": "0xabc",
			"pay_amount": 200.5,
			"pay_currency": "USDTBSC"
		}`))
		s.NoError(wErr)
	}))

	client := NewHTTPClient(s.server.URL, "test-key")
	payment, err := client.CreatePayment(context.Background(), CreatePaymentArgs{
		PriceAmount:   decimal.NewFromInt(200),
		PriceCurrency: "usd",
		PayCurrency:   "USDTBSC",
		OrderID:       "order-1",
	})

	s.Require().NoError(err)
	s.Equal("5077125051", payment.PaymentID)
	s.Equal(StatusWaiting, payment.PaymentStatus)
	s.Equal("0xabc", payment.PayAddress)
	s.True(payment.PayAmount.Equal(decimal.RequireFromString("200.5")))
}

func (s *ClientTestSuite) TestCreatePayment_BadStatus() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, wErr := w.Write([]byte(`{"message":"invalid api key"}`))
		s.NoError(wErr)
	}))

	client := NewHTTPClient(s.server.URL, "bad-key")
	_, err := client.CreatePayment(context.Background(), CreatePaymentArgs{
		PriceAmount:   decimal.NewFromInt(200),
		PriceCurrency: "usd",
		PayCurrency:   "USDTBSC",
		OrderID:       "order-1",
	})

	s.Require().Error(err)
	var statusErr *StatusCodeError
	s.Require().ErrorAs(err, &statusErr)
	s.Equal(http.StatusForbidden, statusErr.Code)
}

func (s *ClientTestSuite) TestVerifyIPNSignature() {
	secret := "ipn-secret"
	// ключи намеренно не в алфавитном порядке.
	body := []byte(`{"payment_status":"finished","payment_id":5077125051,"pay_amount":200.5}`)

	// подпись считается по телу с отсортированными ключами.
	canonical := []byte(`{"pay_amount":200.5,"payment_id":5077125051,"payment_status":"finished"}`)
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(canonical)
	signature := hex.EncodeToString(mac.Sum(nil))

	ok, err := VerifyIPNSignature(body, signature, secret)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ClientTestSuite) TestVerifyIPNSignature_Invalid() {
	body := []byte(`{"payment_id":1,"payment_status":"finished"}`)

	ok, err := VerifyIPNSignature(body, "deadbeef", "ipn-secret")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ClientTestSuite) TestVerifyIPNSignature_BadBody() {
	_, err := VerifyIPNSignature([]byte("not json"), "sig", "ipn-secret")
	s.Require().Error(err)
}
