package jirakiller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	apierrors "github.com/yukikurage/demodb/internal/errors"
	model "github.com/yukikurage/demodb/internal/models/jirakiller"
	"github.com/yukikurage/demodb/internal/repository"
	repo "github.com/yukikurage/demodb/internal/repository/jirakiller"
)

// userStore records the rows handed to Create. Unused methods panic.
type userStore struct {
	repository.Store[model.User]
	created []model.User
	err     error
}

func (s *userStore) Create(_ context.Context, row *model.User) error {
	if s.err != nil {
		return s.err
	}
	row.ID = uint64(len(s.created) + 1)
	s.created = append(s.created, *row)
	return nil
}

type queries struct {
	repo.Queries
	detail *repo.TicketDetail
}

func (q *queries) GetTicket(_ context.Context, id uint64) (*repo.TicketDetail, error) {
	if q.detail == nil || q.detail.ID != id {
		return nil, apierrors.ErrNotFound
	}
	return q.detail, nil
}

type ServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	users   *userStore
	queries *queries
	service *Service
}

func (suite *ServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.users = &userStore{}
	suite.queries = &queries{}
	suite.service = &Service{users: suite.users, queries: suite.queries}
}

func (suite *ServiceTestSuite) TestCreateUser_TrimsInput() {
	user, err := suite.service.CreateUser(suite.ctx, UserInput{Name: "  Ada Lovelace ", Email: " ada@example.com"})
	suite.Require().NoError(err)

	suite.Equal(uint64(1), user.ID)
	suite.Require().Len(suite.users.created, 1)
	suite.Equal("Ada Lovelace", suite.users.created[0].Name)
	suite.Equal("ada@example.com", suite.users.created[0].Email)
}

func (suite *ServiceTestSuite) TestCreateUser_InvalidNeverReachesStore() {
	_, err := suite.service.CreateUser(suite.ctx, UserInput{Name: "Ada", Email: "not-an-email"})
	suite.ErrorIs(err, apierrors.ErrInvalid)
	suite.Empty(suite.users.created)
}

func (suite *ServiceTestSuite) TestCreateUser_WrapsStoreError() {
	suite.users.err = apierrors.ErrDuplicate

	_, err := suite.service.CreateUser(suite.ctx, UserInput{Name: "Ada", Email: "ada@example.com"})
	suite.ErrorIs(err, apierrors.ErrDuplicate)
	suite.ErrorContains(err, "failed to create user")
}

func (suite *ServiceTestSuite) TestGetTicket_UsesQueries() {
	suite.queries.detail = &repo.TicketDetail{Ticket: model.Ticket{ID: 7, Title: "Telemetry"}, TimeLogCount: 2}

	detail, err := suite.service.GetTicket(suite.ctx, 7)
	suite.Require().NoError(err)
	suite.Equal("Telemetry", detail.Title)
	suite.Equal(int64(2), detail.TimeLogCount)

	_, err = suite.service.GetTicket(suite.ctx, 8)
	suite.ErrorIs(err, apierrors.ErrNotFound)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
