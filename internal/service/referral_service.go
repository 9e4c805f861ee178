package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// referralRates - доли профита, уходящие аплайну: 15% прямому рефереру,
// 10% и 5% следующим двум уровням.
var referralRates = []decimal.Decimal{
	decimal.NewFromFloat(0.15),
	decimal.NewFromFloat(0.10),
	decimal.NewFromFloat(0.05),
}

const cascadeBatchSize = 500

type ReferralService struct {
	uow          uow.UOW
	userRepo     UserRepository
	referralRepo ReferralRepository
	ledger       *LedgerService
	l            *logrus.Entry
}

func NewReferralService(u uow.UOW, ledger *LedgerService, l *logrus.Logger) (*ReferralService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	referralRepo, referralRepoErr :=
		uow.GetRepositoryAs[ReferralRepository](u, uow.RepositoryName(repoargs.ReferralRepoName))
	if referralRepoErr != nil {
		return nil, referralRepoErr
	}
	return &ReferralService{
		uow:          u,
		userRepo:     userRepo,
		referralRepo: referralRepo,
		ledger:       ledger,
		l:            l.WithField("component", "referral"),
	}, nil
}

type RegisterReferralResult struct {
	AlreadyLinked bool
	Referrer      *domain.User
}

// Register привязывает юзера к владельцу инвайт-кода. Привязка одноразовая: повторный
// вызов для уже привязанного юзера ничего не меняет и возвращает AlreadyLinked.
// Привязка к себе и циклы в пределах трех уровней аплайна отклоняются.
func (s *ReferralService) Register(
	ctx context.Context,
	userID int64,
	inviteCode string,
) (*RegisterReferralResult, error) {
	user, userErr := s.userRepo.FindByID(ctx, userID)
	if userErr != nil {
		return nil, userErr //nolint:wrapcheck
	}
	if user.ReferredByCode != "" {
		return &RegisterReferralResult{AlreadyLinked: true}, nil
	}

	referrer, referrerErr := s.userRepo.FindByInviteCode(ctx, inviteCode)
	if referrerErr != nil {
		if errors.Is(referrerErr, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("invite code %q: %w", inviteCode, domain.ErrInvalidReferralCode)
		}
		return nil, referrerErr //nolint:wrapcheck
	}
	if referrer.ID == user.ID {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrSelfReferral)
	}
	if cycleErr := s.checkUplineCycle(ctx, user, referrer); cycleErr != nil {
		return nil, cycleErr
	}

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		referralRepo, referralRepoErr :=
			uow.GetAs[ReferralRepository](tx, uow.RepositoryName(repoargs.ReferralRepoName))
		if referralRepoErr != nil {
			return referralRepoErr //nolint:wrapcheck
		}

		if setErr := userRepo.SetReferredBy(c, user.ID, referrer.InviteCode); setErr != nil {
			return setErr //nolint:wrapcheck
		}
		_, linkErr := referralRepo.CreateLink(c, repoargs.CreateReferralLink{
			ReferrerID:     referrer.ID,
			ReferredUserID: user.ID,
		})
		return linkErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("registering referral for user %d: %w", userID, txErr)
	}

	return &RegisterReferralResult{Referrer: referrer}, nil
}

// checkUplineCycle не дает привязать юзера к рефереру, в чьем аплайне (до трех
// уровней) уже стоит сам юзер.
func (s *ReferralService) checkUplineCycle(ctx context.Context, user, referrer *domain.User) error {
	current := referrer
	for range referralRates {
		if current.ReferredByCode == "" {
			return nil
		}
		if current.ReferredByCode == user.InviteCode {
			return fmt.Errorf("user %d is in the upline of %d: %w", user.ID, referrer.ID, domain.ErrSelfReferral)
		}
		next, err := s.userRepo.FindByInviteCode(ctx, current.ReferredByCode)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return nil
			}
			return err //nolint:wrapcheck
		}
		current = next
	}
	return nil
}

type DirectReferral struct {
	User         domain.User
	ProfitEarned decimal.Decimal
	JoinedAt     string
}

type ReferralStats struct {
	TotalReferrals    int64
	TotalProfitEarned decimal.Decimal
	TeamVolume        decimal.Decimal
}

// GetDirectReferrals возвращает прямых рефералов юзера со сведениями о заработанном
// с каждого, в порядке присоединения.
func (s *ReferralService) GetDirectReferrals(ctx context.Context, referrerID int64) ([]DirectReferral, error) {
	links, linksErr := s.referralRepo.GetByReferrerID(ctx, referrerID)
	if linksErr != nil {
		return nil, linksErr //nolint:wrapcheck
	}
	if len(links) == 0 {
		return []DirectReferral{}, nil
	}

	ids := make([]int64, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.ReferredUserID)
	}
	users, usersErr := s.userRepo.FindByIDs(ctx, ids)
	if usersErr != nil {
		return nil, usersErr //nolint:wrapcheck
	}
	byID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	referrals := make([]DirectReferral, 0, len(links))
	for _, link := range links {
		u, ok := byID[link.ReferredUserID]
		if !ok {
			continue
		}
		referrals = append(referrals, DirectReferral{
			User:         u,
			ProfitEarned: link.ProfitEarned,
			JoinedAt:     link.JoinedAt.Format("2006-01-02"),
		})
	}
	return referrals, nil
}

// GetStats агрегирует реферальную команду юзера: число прямых рефералов, суммарный
// заработок с них и суммарный объем их средств (main + profit).
func (s *ReferralService) GetStats(ctx context.Context, referrerID int64) (*ReferralStats, error) {
	links, linksErr := s.referralRepo.GetByReferrerID(ctx, referrerID)
	if linksErr != nil {
		return nil, linksErr //nolint:wrapcheck
	}

	stats := ReferralStats{
		TotalReferrals:    int64(len(links)),
		TotalProfitEarned: decimal.Zero,
		TeamVolume:        decimal.Zero,
	}
	if len(links) == 0 {
		return &stats, nil
	}

	ids := make([]int64, 0, len(links))
	for _, link := range links {
		stats.TotalProfitEarned = stats.TotalProfitEarned.Add(link.ProfitEarned)
		ids = append(ids, link.ReferredUserID)
	}
	users, usersErr := s.userRepo.FindByIDs(ctx, ids)
	if usersErr != nil {
		return nil, usersErr //nolint:wrapcheck
	}
	for _, u := range users {
		stats.TeamVolume = stats.TeamVolume.Add(u.MainBalance).Add(u.ProfitBalance)
	}
	return &stats, nil
}

// DistributeProfits раздает аплайну доли от еще не обработанных profit-записей журнала.
// Каждая запись обрабатывается отдельной транзакцией: сначала запись помечается
// обработанной (повторный захват той же записи невозможен), затем до трех уровней
// аплайна получают 15/10/5% на referral кошелек. Ошибка по одной записи откатывает
// только ее и не мешает остальным.
func (s *ReferralService) DistributeProfits(ctx context.Context) (int, error) {
	transactionRepo, repoErr :=
		uow.GetRepositoryAs[TransactionRepository](s.uow, uow.RepositoryName(repoargs.TransactionRepoName))
	if repoErr != nil {
		return 0, repoErr //nolint:wrapcheck
	}

	var processed int
	for {
		ids, listErr := transactionRepo.ListUncascadedProfitIDs(ctx, cascadeBatchSize)
		if listErr != nil {
			return processed, fmt.Errorf("distributing referral profits: %w", listErr)
		}
		if len(ids) == 0 {
			break
		}

		var handled int
		for _, id := range ids {
			if err := s.cascadeOne(ctx, id); err != nil {
				if errors.Is(err, domain.ErrRecordNotFound) {
					continue
				}
				s.l.WithError(err).WithField("transactionID", id).Error("cascading profit entry")
				continue
			}
			handled++
			processed++
		}
		if handled == 0 {
			// все записи пачки провалились, следующая итерация вернет их же.
			break
		}
	}

	s.l.WithField("processed", processed).Info("referral profits distributed")
	return processed, nil
}

func (s *ReferralService) cascadeOne(ctx context.Context, transactionID int64) error {
	return s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		transactionRepo, transactionRepoErr :=
			uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transactionRepoErr != nil {
			return transactionRepoErr //nolint:wrapcheck
		}
		referralRepo, referralRepoErr :=
			uow.GetAs[ReferralRepository](tx, uow.RepositoryName(repoargs.ReferralRepoName))
		if referralRepoErr != nil {
			return referralRepoErr //nolint:wrapcheck
		}

		entry, claimErr := transactionRepo.ClaimProfitEntry(c, transactionID)
		if claimErr != nil {
			return claimErr //nolint:wrapcheck
		}

		earner, earnerErr := userRepo.FindByID(c, entry.UserID)
		if earnerErr != nil {
			return earnerErr //nolint:wrapcheck
		}

		current := earner
		for level, rate := range referralRates {
			if current.ReferredByCode == "" {
				break
			}
			referrer, referrerErr := userRepo.FindByInviteCode(c, current.ReferredByCode)
			if referrerErr != nil {
				if errors.Is(referrerErr, domain.ErrRecordNotFound) {
					break
				}
				return referrerErr //nolint:wrapcheck
			}

			share := entry.Amount.Mul(rate)
			if _, _, creditErr := s.ledger.CreditInTx(c, tx, LedgerOpArgs{
				UserID: referrer.ID,
				Bucket: domain.BucketReferral,
				Amount: share,
				Type:   domain.TransactionReferralProfit,
				Note: fmt.Sprintf("Level %d referral profit (%s%%) from %s",
					level+1, rate.Mul(oneHundred), earner.Username),
			}); creditErr != nil {
				return creditErr
			}
			// учет на прямой связи; для уровней 2-3 связи нет и вызов молча уходит в никуда.
			if addErr := referralRepo.AddProfitEarned(c, referrer.ID, earner.ID, share); addErr != nil {
				return addErr //nolint:wrapcheck
			}

			current = referrer
		}
		return nil
	})
}
