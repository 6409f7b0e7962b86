package jirakiller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/yukikurage/demodb/internal/dto"
	apierrors "github.com/yukikurage/demodb/internal/errors"
	"github.com/yukikurage/demodb/internal/models"
	model "github.com/yukikurage/demodb/internal/models/jirakiller"
	repo "github.com/yukikurage/demodb/internal/repository/jirakiller"
	service "github.com/yukikurage/demodb/internal/services/jirakiller"
	"github.com/yukikurage/demodb/internal/testutil"
)

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	db := testutil.OpenDB(suite.T(), model.All()...)

	suite.router = gin.New()
	NewHandler(service.NewService(repo.New(db))).Register(suite.router.Group("/api/jirakiller"))
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/jirakiller"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (suite *HandlerTestSuite) errorCode(w *httptest.ResponseRecorder) string {
	var body apierrors.APIError
	suite.decode(w, &body)
	return body.Code
}

func (suite *HandlerTestSuite) create(path string, body any, out any) {
	w := suite.do(http.MethodPost, path, body)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.decode(w, out)
}

func (suite *HandlerTestSuite) TestUserCRUD() {
	var user model.User
	suite.create("/users", gin.H{"name": "  Ada  ", "email": "ada@example.com"}, &user)
	suite.Equal("Ada", user.Name)
	suite.NotZero(user.ID)
	suite.False(user.CreatedAt.IsZero())

	w := suite.do(http.MethodPost, "/users", gin.H{"name": "Ada again", "email": "ada@example.com"})
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal(apierrors.ErrCodeAlreadyExists, suite.errorCode(w))

	w = suite.do(http.MethodPost, "/users", gin.H{"name": "", "email": "not-an-email"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "name is required")
	suite.Contains(w.Body.String(), "email must be a valid email address")

	w = suite.do(http.MethodPut, fmt.Sprintf("/users/%d", user.ID), gin.H{"name": "Ada Lovelace", "email": "ada@example.com"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var updated model.User
	suite.decode(w, &updated)
	suite.Equal("Ada Lovelace", updated.Name)
	suite.True(updated.CreatedAt.Equal(user.CreatedAt))
	suite.False(updated.UpdatedAt.Before(user.UpdatedAt))

	w = suite.do(http.MethodGet, "/users?q=lovelace", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var page dto.ListResponse[model.User]
	suite.decode(w, &page)
	suite.Len(page.Items, 1)
	suite.Equal(1, page.Page)
	suite.Equal(50, page.PageSize)

	w = suite.do(http.MethodGet, "/lookups/users?q=ada", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var options dto.OptionsResponse[models.Option]
	suite.decode(w, &options)
	suite.Equal([]models.Option{{Value: user.ID, Label: "Ada Lovelace"}}, options.Options)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil).Code)
}

func (suite *HandlerTestSuite) TestProjectDates() {
	w := suite.do(http.MethodPost, "/projects", gin.H{
		"name": "Apollo", "start_date": "2025-03-01T00:00:00Z", "end_date": "2025-02-01T00:00:00Z",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "end_date must not be before start_date")

	var project model.Project
	suite.create("/projects", gin.H{
		"name": "Apollo", "start_date": "2025-03-01T09:00:00+09:00", "end_date": "2025-06-01T00:00:00Z",
	}, &project)
	suite.Require().NotNil(project.StartDate)
	suite.Equal("2025-03-01T00:00:00Z", project.StartDate.Format("2006-01-02T15:04:05Z07:00"))
}

func (suite *HandlerTestSuite) TestTicketFlow() {
	var user model.User
	suite.create("/users", gin.H{"name": "Ada", "email": "ada@example.com"}, &user)
	var project model.Project
	suite.create("/projects", gin.H{"name": "Analytical Engine"}, &project)

	w := suite.do(http.MethodPost, "/tickets", gin.H{
		"project_id": 999, "title": "Orphan", "priority": "low", "status": "open",
	})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal(apierrors.ErrCodeInvalidReference, suite.errorCode(w))

	var ticket model.Ticket
	suite.create("/tickets", gin.H{
		"project_id": project.ID, "assigned_user_id": user.ID,
		"title": "Fix login authentication bug", "priority": "high", "status": "in_progress",
	}, &ticket)

	var log model.TimeLog
	suite.create("/time-logs", gin.H{
		"ticket_id": ticket.ID, "user_id": user.ID, "hours": 1.234, "logged_at": "2025-05-01T10:00:00Z",
	}, &log)
	suite.Equal(1.23, log.Hours)

	w = suite.do(http.MethodGet, "/tickets?q=AUTH", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var page dto.ListResponse[model.TicketListItem]
	suite.decode(w, &page)
	suite.Require().Len(page.Items, 1)
	suite.Equal("Analytical Engine", page.Items[0].ProjectName)

	w = suite.do(http.MethodGet, fmt.Sprintf("/tickets/%d/time-logs", ticket.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var logs dto.ListResponse[model.TimeLog]
	suite.decode(w, &logs)
	suite.Require().Len(logs.Items, 1)
	suite.Equal("Ada", logs.Items[0].User.Name)

	// Deleting the project takes its tickets and logs with it
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, fmt.Sprintf("/projects/%d", project.ID), nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, fmt.Sprintf("/tickets/%d", ticket.ID), nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, fmt.Sprintf("/time-logs/%d", log.ID), nil).Code)
}

func (suite *HandlerTestSuite) TestMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/jirakiller/users", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid request body")
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
