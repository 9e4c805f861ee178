package service

import (
	"context"
	"strings"
	"testing"

	"github.com/EmadAkroush/fortenbackend01/internal/domain"
	"github.com/EmadAkroush/fortenbackend01/internal/repository/repoargs"
	"github.com/EmadAkroush/fortenbackend01/internal/service/mocks"
	"github.com/EmadAkroush/fortenbackend01/pkg/uow"
	uowmocks "github.com/EmadAkroush/fortenbackend01/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockTX       *uowmocks.MockTX
	mockUserRepo *mocks.MockUserRepository
	mockHasher   *mocks.MockPasswordHasher
	service      *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockHasher = mocks.NewMockPasswordHasher(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	var err error
	s.service, err = NewUserService(s.mockUOW, s.mockHasher, []byte("secret"))
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *UserServiceTestSuite) expectDo() *gomock.Call {
	return s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(context.Background(), s.mockTX)
		},
	)
}

func (s *UserServiceTestSuite) TestRegister() {
	args := RegisterUserArgs{Username: "alice", Email: "alice@example.com", Password: "password"}

	s.mockHasher.EXPECT().HashPassword(args.Password).Return("hashed", nil)

	s.expectDo()
	s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.CreateUser) (*domain.User, error) {
			s.Equal(args.Username, createArgs.Username)
			s.Equal(args.Email, createArgs.Email)
			s.Equal("hashed", createArgs.Password)
			s.True(strings.HasPrefix(createArgs.InviteCode, "FO-"))
			s.Len(createArgs.InviteCode, 9)
			return &domain.User{ID: 1, Username: createArgs.Username, InviteCode: createArgs.InviteCode}, nil
		})

	user, token, err := s.service.Register(context.Background(), args)
	s.Require().NoError(err)
	s.Equal(args.Username, user.Username)
	s.NotEmpty(token)
}

func (s *UserServiceTestSuite) TestRegister_InviteCodeCollision() {
	args := RegisterUserArgs{Username: "alice", Email: "alice@example.com", Password: "password"}

	s.mockHasher.EXPECT().HashPassword(args.Password).Return("hashed", nil)

	// первая попытка натыкается на занятый инвайт-код, вторая проходит.
	s.expectDo().Times(2)
	first := s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)
	s.mockUserRepo.EXPECT().FindByUsername(gomock.Any(), args.Username).
		Return(nil, domain.ErrRecordNotFound).After(first)
	s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&domain.User{ID: 1, Username: args.Username}, nil).After(first)

	user, token, err := s.service.Register(context.Background(), args)
	s.Require().NoError(err)
	s.Equal(args.Username, user.Username)
	s.NotEmpty(token)
}

func (s *UserServiceTestSuite) TestRegister_UsernameTaken() {
	args := RegisterUserArgs{Username: "alice", Email: "alice@example.com", Password: "password"}

	s.mockHasher.EXPECT().HashPassword(args.Password).Return("hashed", nil)

	s.expectDo()
	s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)
	// username занят, перегенерация кода не выполняется.
	s.mockUserRepo.EXPECT().FindByUsername(gomock.Any(), args.Username).
		Return(&domain.User{ID: 2, Username: args.Username}, nil)

	_, _, err := s.service.Register(context.Background(), args)
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *UserServiceTestSuite) TestLogin() {
	user := domain.User{ID: 1, Username: "alice", Password: "hashed"}

	s.mockUserRepo.EXPECT().FindByUsername(gomock.Any(), user.Username).Return(&user, nil)
	s.mockHasher.EXPECT().ComparePassword("password", user.Password).Return(true)

	got, token, err := s.service.Login(context.Background(), user.Username, "password")
	s.Require().NoError(err)
	s.Equal(user.ID, got.ID)
	s.NotEmpty(token)
}

func (s *UserServiceTestSuite) TestLogin_WrongPassword() {
	user := domain.User{ID: 1, Username: "alice", Password: "hashed"}

	s.mockUserRepo.EXPECT().FindByUsername(gomock.Any(), user.Username).Return(&user, nil)
	s.mockHasher.EXPECT().ComparePassword("wrong", user.Password).Return(false)

	_, _, err := s.service.Login(context.Background(), user.Username, "wrong")
	s.Require().ErrorIs(err, domain.ErrPasswordMissMatch)
}

func (s *UserServiceTestSuite) TestLogin_UnknownUser() {
	s.mockUserRepo.EXPECT().FindByUsername(gomock.Any(), "ghost").
		Return(nil, domain.ErrRecordNotFound)

	_, _, err := s.service.Login(context.Background(), "ghost", "password")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
