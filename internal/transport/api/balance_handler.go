package api

import (
	"context"
	"errors"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"net/http"
)

type BalanceHandler struct {
	svs LedgerServicer
}

func NewBalanceHandler(svs LedgerServicer) *BalanceHandler {
	return &BalanceHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Main     float64 `json:"main"`
	Profit   float64 `json:"profit"`
	Referral float64 `json:"referral"`
	Bonus    float64 `json:"bonus"`
}

func (b *BalanceHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := b.svs.GetBalances(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Main:     user.MainBalance.InexactFloat64(),
		Profit:   user.ProfitBalance.InexactFloat64(),
		Referral: user.ReferralProfit.InexactFloat64(),
		Bonus:    user.BonusBalance.InexactFloat64(),
	})
}

type TransferParams struct {
	From   string          `binding:"required,oneof=profit referral bonus" json:"from"`
	Amount decimal.Decimal `binding:"required"                             json:"amount"`
}

// Transfer POST RouteGroup + BalanceTransferRoute. Переносит сумму из кошелька from
// в main. Тратить и выводить можно только с main.
func (b *BalanceHandler) Transfer(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params TransferParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := b.svs.TransferToMain(reqCtx, currentUserID, domain.BucketType(params.From), params.Amount)
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

	c.JSON(http.StatusOK, &BalanceResponse{
		Main:     user.MainBalance.InexactFloat64(),
		Profit:   user.ProfitBalance.InexactFloat64(),
		Referral: user.ReferralProfit.InexactFloat64(),
		Bonus:    user.BonusBalance.InexactFloat64(),
	})
}
