package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/yukikurage/demodb/internal/database"
	apierrors "github.com/yukikurage/demodb/internal/errors"
	"github.com/yukikurage/demodb/internal/models"
	"github.com/yukikurage/demodb/internal/models/jirakiller"
	"github.com/yukikurage/demodb/internal/testutil"
)

var _ Store[jirakiller.User] = (*Table[jirakiller.User, *jirakiller.User])(nil)

type TableTestSuite struct {
	suite.Suite
	ctx   context.Context
	users *Table[jirakiller.User, *jirakiller.User]
}

func (suite *TableTestSuite) SetupTest() {
	db := testutil.OpenDB(suite.T(), jirakiller.All()...)
	suite.ctx = context.Background()
	suite.users = NewTable[jirakiller.User](db, "name", "name", "email")
}

func (suite *TableTestSuite) createUser(name, email string) *jirakiller.User {
	user := &jirakiller.User{Name: name, Email: email}
	suite.Require().NoError(suite.users.Create(suite.ctx, user))
	return user
}

func (suite *TableTestSuite) TestCreate_StampsAndAssignsID() {
	before := database.Now()
	user := suite.createUser("Ada Lovelace", "ada@example.com")

	suite.NotZero(user.ID)
	suite.False(user.CreatedAt.Before(before))
	suite.Equal(user.CreatedAt, user.UpdatedAt)
	suite.Equal(time.UTC, user.CreatedAt.Location())
}

func (suite *TableTestSuite) TestCreate_KeepsGivenTimestamps() {
	created := time.Date(2024, 3, 1, 10, 0, 0, 123456789, time.UTC)
	user := &jirakiller.User{
		Name:       "Grace Hopper",
		Email:      "grace@example.com",
		Timestamps: models.Timestamps{CreatedAt: created, UpdatedAt: created.Add(time.Hour)},
	}
	suite.Require().NoError(suite.users.Create(suite.ctx, user))

	stored, err := suite.users.FindByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.True(stored.CreatedAt.Equal(created.Truncate(time.Millisecond)))
	suite.True(stored.UpdatedAt.Equal(created.Add(time.Hour).Truncate(time.Millisecond)))
}

func (suite *TableTestSuite) TestCreate_RejectsUpdatedBeforeCreated() {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	user := &jirakiller.User{
		Name:       "Backwards",
		Email:      "backwards@example.com",
		Timestamps: models.Timestamps{CreatedAt: created, UpdatedAt: created.Add(-time.Second)},
	}

	err := suite.users.Create(suite.ctx, user)
	suite.ErrorIs(err, apierrors.ErrInvalid)
	suite.Zero(user.ID)
}

func (suite *TableTestSuite) TestCreate_DuplicateEmail() {
	suite.createUser("Ada", "ada@example.com")

	err := suite.users.Create(suite.ctx, &jirakiller.User{Name: "Other Ada", Email: "ada@example.com"})
	suite.ErrorIs(err, apierrors.ErrDuplicate)
}

func (suite *TableTestSuite) TestFindByID_NotFound() {
	_, err := suite.users.FindByID(suite.ctx, 999)
	suite.ErrorIs(err, apierrors.ErrNotFound)
}

func (suite *TableTestSuite) TestReplace_KeepsCreatedAtAndAdvancesUpdatedAt() {
	user := suite.createUser("Ada", "ada@example.com")

	replacement := &jirakiller.User{Name: "Ada King", Email: "ada.king@example.com"}
	suite.Require().NoError(suite.users.Replace(suite.ctx, user.ID, replacement))

	suite.Equal(user.ID, replacement.ID)
	suite.Equal("Ada King", replacement.Name)
	suite.True(replacement.CreatedAt.Equal(user.CreatedAt))
	suite.True(replacement.UpdatedAt.After(user.UpdatedAt))
}

func (suite *TableTestSuite) TestReplace_NotFound() {
	err := suite.users.Replace(suite.ctx, 999, &jirakiller.User{Name: "Nobody", Email: "nobody@example.com"})
	suite.ErrorIs(err, apierrors.ErrNotFound)
}

func (suite *TableTestSuite) TestReplaceIfUnchanged() {
	user := suite.createUser("Ada", "ada@example.com")
	token := user.UpdatedAt

	first := &jirakiller.User{Name: "Ada v2", Email: "ada@example.com"}
	suite.Require().NoError(suite.users.ReplaceIfUnchanged(suite.ctx, user.ID, token, first))
	suite.True(first.UpdatedAt.After(token))

	// The old token is now stale
	stale := &jirakiller.User{Name: "Ada v3", Email: "ada@example.com"}
	err := suite.users.ReplaceIfUnchanged(suite.ctx, user.ID, token, stale)
	suite.ErrorIs(err, apierrors.ErrConflict)

	stored, err := suite.users.FindByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("Ada v2", stored.Name)

	// The fresh token succeeds
	fresh := &jirakiller.User{Name: "Ada v3", Email: "ada@example.com"}
	suite.Require().NoError(suite.users.ReplaceIfUnchanged(suite.ctx, user.ID, stored.UpdatedAt, fresh))
	suite.Equal("Ada v3", fresh.Name)
}

func (suite *TableTestSuite) TestReplaceIfUnchanged_NotFound() {
	err := suite.users.ReplaceIfUnchanged(suite.ctx, 999, time.Now(), &jirakiller.User{Name: "x", Email: "x@example.com"})
	suite.ErrorIs(err, apierrors.ErrNotFound)
}

func (suite *TableTestSuite) TestDelete() {
	user := suite.createUser("Ada", "ada@example.com")

	suite.Require().NoError(suite.users.Delete(suite.ctx, user.ID))
	suite.ErrorIs(suite.users.Delete(suite.ctx, user.ID), apierrors.ErrNotFound)

	n, err := suite.users.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(n)
}

func (suite *TableTestSuite) TestListAndLookup() {
	suite.createUser("Charlie", "charlie@example.com")
	suite.createUser("alice", "alice@sample.org")
	suite.createUser("Bob", "bob@example.com")

	all, err := suite.users.List(suite.ctx, "", 1)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("Bob", all[0].Name, "newest first")

	byEmail, err := suite.users.List(suite.ctx, "SAMPLE", 1)
	suite.Require().NoError(err)
	suite.Require().Len(byEmail, 1)
	suite.Equal("alice", byEmail[0].Name)

	options, err := suite.users.Lookup(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Require().Len(options, 3)
	suite.Equal("Bob", options[0].Label)

	options, err = suite.users.Lookup(suite.ctx, "li")
	suite.Require().NoError(err)
	suite.Len(options, 2)
}

func (suite *TableTestSuite) TestCreateBatch() {
	rows := []jirakiller.User{
		{Name: "One", Email: "one@example.com"},
		{Name: "Two", Email: "two@example.com"},
	}
	suite.Require().NoError(suite.users.CreateBatch(suite.ctx, rows))
	suite.NotZero(rows[0].ID)
	suite.NotZero(rows[1].ID)
	suite.NotEqual(rows[0].ID, rows[1].ID)

	dup := []jirakiller.User{
		{Name: "Three", Email: "three@example.com"},
		{Name: "Again", Email: "one@example.com"},
	}
	suite.ErrorIs(suite.users.CreateBatch(suite.ctx, dup), apierrors.ErrDuplicate)

	n, err := suite.users.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), n, "failed batch is rolled back")
}

func (suite *TableTestSuite) TestUnlistedTable() {
	logs := NewTable[jirakiller.TimeLog](suite.users.db, "")

	_, err := logs.List(suite.ctx, "", 1)
	suite.ErrorIs(err, ErrUnlisted)
	_, err = logs.Lookup(suite.ctx, "1")
	suite.ErrorIs(err, ErrUnlisted)

	_, err = logs.FindByID(suite.ctx, 1)
	suite.ErrorIs(err, apierrors.ErrNotFound)
}

func TestTableTestSuite(t *testing.T) {
	suite.Run(t, new(TableTestSuite))
}
