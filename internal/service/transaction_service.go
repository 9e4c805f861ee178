package service

import (
	"context"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
)

type TransactionService struct {
	transactionRepo TransactionRepository
}

func NewTransactionService(u uow.UOW) (*TransactionService, error) {
	transactionRepo, transactionRepoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transactionRepoErr != nil {
		return nil, transactionRepoErr
	}
	return &TransactionService{transactionRepo: transactionRepo}, nil
}

// GetByUserID возвращает историю операций юзера от новых к старым.
func (s *TransactionService) GetByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}
