// Package jobs - расписание фоновых начислений: дневной профит по активным
// инвестициям и реферальный каскад по свежим profit-записям журнала.
package jobs

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=daily.go -destination=mocks/mocks.go -package=mocks

// DailySchedule - 01:00 каждый день.
const DailySchedule = "0 1 * * *"

type ProfitAccruer interface {
	AccrueDailyProfits(ctx context.Context) (int, error)
}

type ProfitDistributor interface {
	DistributeProfits(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron        *cron.Cron
	accruer     ProfitAccruer
	distributor ProfitDistributor
	running     atomic.Bool
	l           *logrus.Entry
}

func New(accruer ProfitAccruer, distributor ProfitDistributor, l *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		accruer:     accruer,
		distributor: distributor,
		l:           l.WithField("component", "jobs"),
	}
}

// Start регистрирует дневной прогон и запускает планировщик.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(DailySchedule, func() {
		s.RunOnce(ctx)
	}); err != nil {
		return fmt.Errorf("scheduling daily run: %s", err.Error())
	}
	s.cron.Start()
	s.l.Info("scheduler started")
	return nil
}

// Stop останавливает планировщик и дожидается завершения запущенных задач.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.l.Info("scheduler stopped")
}

// RunOnce выполняет один прогон: начисление профита, затем каскад. Каскад не
// запускается, если начисление упало целиком. Повторный вход при еще идущем
// прогоне отбрасывается.
func (s *Scheduler) RunOnce(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		s.l.Warn("previous run still in progress, skipping")
		return
	}
	defer s.running.Store(false)

	accrued, accrueErr := s.accruer.AccrueDailyProfits(ctx)
	if accrueErr != nil {
		s.l.WithError(accrueErr).Error("daily profit accrual failed")
		return
	}

	distributed, distributeErr := s.distributor.DistributeProfits(ctx)
	if distributeErr != nil {
		s.l.WithError(distributeErr).Error("referral distribution failed")
	}

	s.l.WithFields(logrus.Fields{
		"accrued":     accrued,
		"distributed": distributed,
	}).Info("daily run finished")
}
