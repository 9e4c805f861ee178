package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type TransactionsHandler struct {
	svs TransactionServicer
}

func NewTransactionsHandler(svs TransactionServicer) *TransactionsHandler {
	return &TransactionsHandler{
		svs: svs,
	}
}

type TransactionResponseItem struct {
	ID        int64   `json:"ID"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	Note      string  `json:"note,omitempty"`
	TxHash    string  `json:"txHash,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// Index GET RouteGroup + TransactionsRoute. История операций юзера от новых к старым.
func (h *TransactionsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.svs.GetByUserID(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]TransactionResponseItem, len(transactions))
	for i, transaction := range transactions {
		response[i] = TransactionResponseItem{
			ID:        transaction.ID,
			Type:      string(transaction.Type),
			Amount:    transaction.Amount.InexactFloat64(),
			Currency:  transaction.Currency,
			Status:    string(transaction.Status),
			Note:      transaction.Note,
			TxHash:    transaction.TxHash,
			CreatedAt: transaction.CreatedAt.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, response)
}
