package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const RoutePayment = "/v1/payment"

const defaultTimeout = 15 * time.Second

// HTTPClient является реализацией интерфейса Client для HTTP запросов к шлюзу.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, apiKey string) HTTPClient {
	return HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type createPaymentRequest struct {
	PriceAmount      decimal.Decimal `json:"price_amount"`
	PriceCurrency    string          `json:"price_currency"`
	PayCurrency      string          `json:"pay_currency"`
	OrderID          string          `json:"order_id"`
	OrderDescription string          `json:"order_description,omitempty"`
	IPNCallbackURL   string          `json:"ipn_callback_url,omitempty"`
}

// createPaymentResponse - сырой ответ шлюза. payment_id приходит числом,
// поэтому читаем его как json.Number.
type createPaymentResponse struct {
	PaymentID     json.Number     `json:"payment_id"`
	PaymentStatus string          `json:"payment_status"`
	PayAddress    string          `json:"pay_address"`
	PayAmount     decimal.Decimal `json:"pay_amount"`
	PayCurrency   string          `json:"pay_currency"`
}

// CreatePayment выставляет инвойс на пополнение. В случае ошибки возвращает или
// StatusCodeError или не типизированную ошибку.
//
//nolint:nonamedreturns
func (c HTTPClient) CreatePayment(ctx context.Context, args CreatePaymentArgs) (payment *Payment, err error) {
	payload, marshalErr := json.Marshal(createPaymentRequest{
		PriceAmount:      args.PriceAmount,
		PriceCurrency:    args.PriceCurrency,
		PayCurrency:      args.PayCurrency,
		OrderID:          args.OrderID,
		OrderDescription: args.OrderDescription,
		IPNCallbackURL:   args.IPNCallbackURL,
	})
	if marshalErr != nil {
		return nil, fmt.Errorf("marshal request: %s", marshalErr.Error())
	}

	req, reqErr := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+RoutePayment, bytes.NewReader(payload))
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response: %s", readErr.Error())
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, NewStatusCodeError(resp.StatusCode, string(body))
	}

	var raw createPaymentResponse
	if jsonErr := json.Unmarshal(body, &raw); jsonErr != nil {
		return nil, fmt.Errorf("parse response: %s", jsonErr.Error())
	}

	return &Payment{
		PaymentID:     raw.PaymentID.String(),
		PaymentStatus: raw.PaymentStatus,
		PayAddress:    raw.PayAddress,
		PayAmount:     raw.PayAmount,
		PayCurrency:   raw.PayCurrency,
	}, nil
}

// VerifyIPNSignature проверяет HMAC-SHA512 подпись IPN-колбека. Шлюз подписывает
// JSON тела, пересобранный с отсортированными по алфавиту ключами.
func VerifyIPNSignature(body []byte, signature, ipnSecret string) (bool, error) {
	// UseNumber сохраняет исходную запись чисел, иначе пересборка исказит подпись.
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return false, fmt.Errorf("parse ipn body: %s", err.Error())
	}

	// json.Marshal сериализует map с ключами в алфавитном порядке, что и требует шлюз.
	canonical, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		return false, fmt.Errorf("marshal ipn body: %s", marshalErr.Error())
	}

	mac := hmac.New(sha512.New, []byte(ipnSecret))
	mac.Write(canonical)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature)), nil
}
