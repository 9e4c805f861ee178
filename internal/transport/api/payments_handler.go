package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/service"
	"github.com/EmadAkroush/fortenbackend01/internal/transport/gateway"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const ipnSignatureHeader = "x-nowpayments-sig"

type PaymentsHandler struct {
	svs       PaymentServicer
	ipnSecret []byte
}

func NewPaymentsHandler(svs PaymentServicer, ipnSecret []byte) *PaymentsHandler {
	return &PaymentsHandler{
		svs:       svs,
		ipnSecret: ipnSecret,
	}
}

type DepositParams struct {
	Amount      decimal.Decimal `binding:"required"  json:"amount"`
	PayCurrency string          `binding:"required"  json:"payCurrency"`
}

type DepositResponse struct {
	PaymentID   string  `json:"paymentID"`
	PayAddress  string  `json:"payAddress"`
	PayAmount   float64 `json:"payAmount"`
	PayCurrency string  `json:"payCurrency"`
}

// Deposit POST RouteGroup + DepositRoute. Выставляет инвойс на пополнение main кошелька.
func (h *PaymentsHandler) Deposit(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params DepositParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	invoice, err := h.svs.CreateDeposit(reqCtx, currentUserID, params.Amount, params.PayCurrency)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrUnsupportedNetwork):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, &DepositResponse{
		PaymentID:   invoice.PaymentID,
		PayAddress:  invoice.PayAddress,
		PayAmount:   invoice.PayAmount.InexactFloat64(),
		PayCurrency: invoice.PayCurrency,
	})
}

// ipnPayload - тело колбека шлюза. payment_id приходит числом.
type ipnPayload struct {
	PaymentID     json.Number `json:"payment_id"`
	PaymentStatus string      `json:"payment_status"`
	PayinHash     string      `json:"payin_hash"`
}

// IPN POST RouteGroup + IPNRoute. Колбек шлюза об итоге платежа. Авторизуется
// HMAC подписью тела, токен не нужен.
func (h *PaymentsHandler) IPN(c *gin.Context) {
	body, readErr := io.ReadAll(c.Request.Body)
	if readErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, readErr).SetType(gin.ErrorTypeBind)
		return
	}

	if len(h.ipnSecret) > 0 {
		ok, verifyErr := gateway.VerifyIPNSignature(body, c.GetHeader(ipnSignatureHeader), string(h.ipnSecret))
		if verifyErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, verifyErr).SetType(gin.ErrorTypeBind)
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid signature"})
			return
		}
	}

	var payload ipnPayload
	if jsonErr := json.Unmarshal(body, &payload); jsonErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, jsonErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.HandleIPN(reqCtx, service.IPNArgs{
		PaymentID:     payload.PaymentID.String(),
		PaymentStatus: payload.PaymentStatus,
		TxHash:        payload.PayinHash,
	}); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.AbortWithStatus(http.StatusOK)
}

type WithdrawParams struct {
	Amount  decimal.Decimal `binding:"required" json:"amount"`
	Address string          `binding:"required" json:"address"`
}

type WithdrawResponse struct {
	Amount    float64 `json:"amount"`
	NetAmount float64 `json:"netAmount"`
	Fee       float64 `json:"fee"`
	Status    string  `json:"status"`
}

// Withdraw POST RouteGroup + WithdrawRoute. Ставит заявку на вывод с main кошелька.
// Списывается вся запрошенная сумма, юзеру уходит остаток после комиссии 10%.
func (h *PaymentsHandler) Withdraw(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params WithdrawParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.svs.RequestWithdrawal(reqCtx, currentUserID, params.Amount, params.Address)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrInvalidAmount):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, &WithdrawResponse{
		Amount:    result.Transaction.Amount.InexactFloat64(),
		NetAmount: result.NetAmount.InexactFloat64(),
		Fee:       result.Fee.InexactFloat64(),
		Status:    string(result.Transaction.Status),
	})
}
