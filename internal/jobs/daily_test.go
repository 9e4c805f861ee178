package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/EmadAkroush/fortenbackend01/internal/jobs/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type SchedulerTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockAccruer     *mocks.MockProfitAccruer
	mockDistributor *mocks.MockProfitDistributor
	scheduler       *Scheduler
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAccruer = mocks.NewMockProfitAccruer(s.mockCtrl)
	s.mockDistributor = mocks.NewMockProfitDistributor(s.mockCtrl)
	s.scheduler = New(s.mockAccruer, s.mockDistributor, logrus.New())
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *SchedulerTestSuite) TestRunOnce() {
	// каскад стартует только после начисления.
	accrue := s.mockAccruer.EXPECT().AccrueDailyProfits(gomock.Any()).Return(3, nil)
	s.mockDistributor.EXPECT().DistributeProfits(gomock.Any()).Return(5, nil).After(accrue)

	s.scheduler.RunOnce(context.Background())
}

func (s *SchedulerTestSuite) TestRunOnce_AccrualFailureSkipsDistribution() {
	s.mockAccruer.EXPECT().AccrueDailyProfits(gomock.Any()).
		Return(0, errors.New("db down"))
	s.mockDistributor.EXPECT().DistributeProfits(gomock.Any()).Times(0)

	s.scheduler.RunOnce(context.Background())
}

func (s *SchedulerTestSuite) TestRunOnce_DistributionFailureLogged() {
	s.mockAccruer.EXPECT().AccrueDailyProfits(gomock.Any()).Return(2, nil)
	s.mockDistributor.EXPECT().DistributeProfits(gomock.Any()).
		Return(0, errors.New("cascade failed"))

	s.scheduler.RunOnce(context.Background())
}

func (s *SchedulerTestSuite) TestRunOnce_ReentryRejected() {
	s.scheduler.running.Store(true)

	s.mockAccruer.EXPECT().AccrueDailyProfits(gomock.Any()).Times(0)
	s.mockDistributor.EXPECT().DistributeProfits(gomock.Any()).Times(0)

	s.scheduler.RunOnce(context.Background())
}
