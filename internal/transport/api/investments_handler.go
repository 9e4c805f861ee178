package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InvestmentsHandler struct {
	svs InvestmentServicer
}

func NewInvestmentsHandler(svs InvestmentServicer) *InvestmentsHandler {
	return &InvestmentsHandler{
		svs: svs,
	}
}

type InvestParams struct {
	Amount decimal.Decimal `binding:"required" json:"amount"`
}

type InvestmentResponseItem struct {
	ID          int64   `json:"ID"`
	PackageName string  `json:"package"`
	Amount      float64 `json:"amount"`
	DailyRate   float64 `json:"dailyRate"`
	TotalProfit float64 `json:"totalProfit"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// Create POST RouteGroup + InvestmentsRoute. Открывает инвестицию или доливает сумму
// в уже активную.
func (h *InvestmentsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params InvestParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.svs.CreateOrIncrease(reqCtx, currentUserID, params.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrNoMatchingPackage):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    result.Message,
		"investment": newInvestmentResponseItem(result.Investment),
	})
}

// Index GET RouteGroup + InvestmentsRoute. Список инвестиций юзера от новых к старым.
func (h *InvestmentsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	investments, err := h.svs.GetByUserID(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]InvestmentResponseItem, len(investments))
	for i := range investments {
		response[i] = newInvestmentResponseItem(&investments[i])
	}
	c.JSON(http.StatusOK, response)
}

// Cancel DELETE RouteGroup + InvestmentRoute. Закрывает инвестицию и возвращает тело
// на main кошелек. Чужую инвестицию закрыть нельзя.
func (h *InvestmentsHandler) Cancel(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	investmentID, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	investments, listErr := h.svs.GetByUserID(reqCtx, currentUserID)
	if listErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, listErr).SetType(gin.ErrorTypePrivate)
		return
	}
	var owned bool
	for i := range investments {
		if investments[i].ID == investmentID {
			owned = true
			break
		}
	}
	if !owned {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	investment, err := h.svs.Cancel(reqCtx, investmentID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrInvestmentClosed):
			c.AbortWithStatus(http.StatusConflict)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Investment canceled and refunded",
		"investment": newInvestmentResponseItem(investment),
	})
}

func newInvestmentResponseItem(investment *domain.Investment) InvestmentResponseItem {
	return InvestmentResponseItem{
		ID:          investment.ID,
		PackageName: investment.PackageName,
		Amount:      investment.Amount.InexactFloat64(),
		DailyRate:   investment.DailyRate.InexactFloat64(),
		TotalProfit: investment.TotalProfit.InexactFloat64(),
		Status:      string(investment.Status),
		CreatedAt:   investment.CreatedAt.Format(time.RFC3339),
	}
}
