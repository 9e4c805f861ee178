package api

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/logger"
	"github.com/EmadAkroush/fortenbackend01/internal/service"
	"github.com/EmadAkroush/fortenbackend01/internal/service/tokens"
	"github.com/EmadAkroush/fortenbackend01/internal/transport/api/mocks"
	"github.com/EmadAkroush/fortenbackend01/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// decMatcher сравнивает decimal аргументы по значению, а не по внутреннему представлению.
type decMatcher struct {
	want decimal.Decimal
}

func (m decMatcher) Matches(x interface{}) bool {
	got, ok := x.(decimal.Decimal)
	return ok && got.Equal(m.want)
}

func (m decMatcher) String() string {
	return fmt.Sprintf("is equal to %s", m.want)
}

func decEq(want decimal.Decimal) gomock.Matcher {
	return decMatcher{want: want}
}

type InvestmentsHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockInvestmentService *mocks.MockInvestmentServicer
	jwtSecret             []byte
}

func TestInvestmentsHandlerSuite(t *testing.T) {
	suite.Run(t, new(InvestmentsHandlerTestSuite))
}

func (s *InvestmentsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockInvestmentService = mocks.NewMockInvestmentServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:            logger.New(os.Stdout),
		InvestmentService: s.mockInvestmentService,
		JWTSecretKey:      s.jwtSecret,
	})
}

func (s *InvestmentsHandlerTestSuite) TestCreate() {
	var currentUserID int64 = 1

	jwtToken, jwtErr := tokens.GenerateUserJWT(currentUserID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	validAmount := decimal.NewFromInt(500)
	poorAmount := decimal.NewFromInt(10000)
	tinyAmount := decimal.NewFromInt(10)

	// Моки
	// Валидный запрос.
	s.mockInvestmentService.EXPECT().
		CreateOrIncrease(gomock.Any(), currentUserID, decEq(validAmount)).
		Return(&service.InvestmentResult{
			Investment: &domain.Investment{
				ID:          1,
				UserID:      currentUserID,
				PackageName: "Starter",
				Amount:      validAmount,
				DailyRate:   decimal.NewFromInt(1),
				Status:      domain.InvestmentStatusActive,
			},
			Message: "Investment started successfully in Starter package.",
		}, nil).Times(1)
	// Не хватает средств на main кошельке.
	s.mockInvestmentService.EXPECT().
		CreateOrIncrease(gomock.Any(), currentUserID, decEq(poorAmount)).
		Return(nil, domain.ErrInsufficientFunds).Times(1)
	// Сумма ниже минимального пакета.
	s.mockInvestmentService.EXPECT().
		CreateOrIncrease(gomock.Any(), currentUserID, decEq(tinyAmount)).
		Return(nil, domain.ErrNoMatchingPackage).Times(1)

	cases := []struct {
		name       string
		payload    string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    `{"amount": 500}`,
			jwtToken:   jwtToken,
			wantStatus: http.StatusCreated,
		}, {
			name:       "insufficient funds",
			payload:    `{"amount": 10000}`,
			jwtToken:   jwtToken,
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "below minimum package",
			payload:    `{"amount": 10}`,
			jwtToken:   jwtToken,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "not authorized",
			payload:    `{"amount": 500}`,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "bad request",
			payload:    `{}`,
			jwtToken:   jwtToken,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + InvestmentsRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				authHeader := fmt.Sprintf("Bearer %s", t.jwtToken)
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", authHeader))
			}
			reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json"))
			res, err := testutils.MakeRequest(args, reqOpts...)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *InvestmentsHandlerTestSuite) TestCancel() {
	var ownerID int64 = 1
	var strangerID int64 = 2
	var investmentID int64 = 7

	ownerToken, oErr := tokens.GenerateUserJWT(ownerID, time.Hour, s.jwtSecret)
	s.Require().NoError(oErr)
	strangerToken, sErr := tokens.GenerateUserJWT(strangerID, time.Hour, s.jwtSecret)
	s.Require().NoError(sErr)

	owned := []domain.Investment{
		{ID: investmentID, UserID: ownerID, PackageName: "Starter", Status: domain.InvestmentStatusActive},
	}
	s.mockInvestmentService.EXPECT().GetByUserID(gomock.Any(), ownerID).Return(owned, nil)
	s.mockInvestmentService.EXPECT().GetByUserID(gomock.Any(), strangerID).Return([]domain.Investment{}, nil)

	canceled := owned[0]
	canceled.Status = domain.InvestmentStatusCanceled
	s.mockInvestmentService.EXPECT().Cancel(gomock.Any(), investmentID).Return(&canceled, nil).Times(1)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "owner cancels",
			jwtToken:   ownerToken,
			wantStatus: http.StatusOK,
		}, {
			// чужая инвестиция выглядит как несуществующая.
			name:       "stranger gets not found",
			jwtToken:   strangerToken,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "not authorized",
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodDelete,
				URL:    fmt.Sprintf("%s%s/%d", RouteGroup, InvestmentsRoute, investmentID),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				authHeader := fmt.Sprintf("Bearer %s", t.jwtToken)
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", authHeader))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
