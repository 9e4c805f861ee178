package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/internal/service/tokens"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
)

const JWTTokenExpire = 24 * time.Hour

// inviteCodeAttempts ограничивает перегенерацию инвайт-кода при коллизиях.
const inviteCodeAttempts = 5

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, hasher PasswordHasher, jwtTokenSecret []byte) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Username string
	Email    string
	Password string
}

// Register создает юзера с персональным инвайт-кодом. После успешного создания
// генерирует jwt token. Возвращает 3 значения: созданный юзер, токен и ошибку.
//
// Инвайт-код генерируется случайно; при коллизии по уникальному индексу код
// перегенерируется, занятый username/email возвращает domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}

	var user *domain.User
	var token string
	var lastErr error

	for i := 0; i < inviteCodeAttempts; i++ {
		txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
			if userRepoErr != nil {
				return userRepoErr //nolint:wrapcheck
			}

			var userErr, tokenErr error
			user, userErr = userRepo.Create(c, repoargs.CreateUser{
				Username:   args.Username,
				Email:      args.Email,
				Password:   password,
				InviteCode: generateInviteCode(),
			})
			if userErr != nil {
				return userErr //nolint:wrapcheck
			}

			token, tokenErr = tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
			if tokenErr != nil {
				return tokenErr //nolint:wrapcheck
			}
			return nil
		})

		if txErr == nil {
			return user, token, nil
		}
		lastErr = txErr

		if errors.Is(txErr, domain.ErrDuplicateKey) {
			if _, findErr := s.userRepo.FindByUsername(ctx, args.Username); findErr == nil {
				// занят сам username, перегенерация кода не поможет.
				break
			}
			continue
		}
		break
	}

	return nil, "", fmt.Errorf("registering user: %w", lastErr)
}

// Login ищет юзера по username и сверяет пароль. Возвращает юзера, токен и ошибку.
// Неверный пароль возвращает domain.ErrPasswordMissMatch.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindByUsername(ctx, username)
	if findErr != nil {
		return nil, "", findErr //nolint:wrapcheck
	}

	if !s.hasher.ComparePassword(password, user.Password) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", tokenErr //nolint:wrapcheck
	}
	return user, token, nil
}

// GetByID возвращает юзера по идентификатору.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}
