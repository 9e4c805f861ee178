package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/gin-gonic/gin"
)

type ReferralsHandler struct {
	svs ReferralServicer
}

func NewReferralsHandler(svs ReferralServicer) *ReferralsHandler {
	return &ReferralsHandler{
		svs: svs,
	}
}

type ReferralRegisterParams struct {
	InviteCode string `binding:"required,max=16" json:"inviteCode"`
}

// Register POST RouteGroup + ReferralsRoute. Привязывает текущего юзера к владельцу
// инвайт-кода. Повторная привязка уже привязанного юзера - no-op.
func (h *ReferralsHandler) Register(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params ReferralRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.svs.Register(reqCtx, currentUserID, params.InviteCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReferralCode):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		case errors.Is(err, domain.ErrSelfReferral):
			c.AbortWithStatus(http.StatusConflict)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	if result.AlreadyLinked {
		c.JSON(http.StatusOK, gin.H{"message": "Referral already registered"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Referral registered successfully"})
}

type ReferralResponseItem struct {
	Username     string  `json:"username"`
	ProfitEarned float64 `json:"profitEarned"`
	JoinedAt     string  `json:"joinedAt"`
}

// Index GET RouteGroup + ReferralsRoute. Прямые рефералы текущего юзера в порядке
// присоединения.
func (h *ReferralsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	referrals, err := h.svs.GetDirectReferrals(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]ReferralResponseItem, len(referrals))
	for i, referral := range referrals {
		response[i] = ReferralResponseItem{
			Username:     referral.User.Username,
			ProfitEarned: referral.ProfitEarned.InexactFloat64(),
			JoinedAt:     referral.JoinedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}

type ReferralStatsResponse struct {
	TotalReferrals    int64   `json:"totalReferrals"`
	TotalProfitEarned float64 `json:"totalProfitEarned"`
	TeamVolume        float64 `json:"teamVolume"`
}

// Stats GET RouteGroup + ReferralStatsRoute.
func (h *ReferralsHandler) Stats(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.svs.GetStats(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &ReferralStatsResponse{
		TotalReferrals:    stats.TotalReferrals,
		TotalProfitEarned: stats.TotalProfitEarned.InexactFloat64(),
		TeamVolume:        stats.TeamVolume.InexactFloat64(),
	})
}
