package blog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	apierrors "github.com/yukikurage/demodb/internal/errors"
	model "github.com/yukikurage/demodb/internal/models/blog"
	repo "github.com/yukikurage/demodb/internal/repository/blog"
	service "github.com/yukikurage/demodb/internal/services/blog"
	"github.com/yukikurage/demodb/internal/testutil"
)

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine

	author model.Author
	post   model.Post
	tag    model.Tag
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	db := testutil.OpenDB(suite.T(), model.All()...)

	suite.router = gin.New()
	NewHandler(service.NewService(repo.New(db))).Register(suite.router.Group("/api/blog"))

	suite.create("/authors", gin.H{"name": "Rob", "email": "rob@example.com"}, &suite.author)
	suite.create("/posts", gin.H{"author_id": suite.author.ID, "title": "Errors are values", "content": "..."}, &suite.post)
	suite.create("/tags", gin.H{"name": "golang"}, &suite.tag)
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/blog"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) create(path string, body any, out any) {
	w := suite.do(http.MethodPost, path, body)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out))
}

func (suite *HandlerTestSuite) TestAttachDetachTag() {
	path := fmt.Sprintf("/posts/%d/tags/%d", suite.post.ID, suite.tag.ID)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodPut, path, nil).Code)

	w := suite.do(http.MethodPut, path, nil)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), apierrors.ErrCodeAlreadyExists)

	w = suite.do(http.MethodGet, fmt.Sprintf("/posts/%d", suite.post.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var detail repo.PostDetail
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &detail))
	suite.Require().Len(detail.Tags, 1)
	suite.Equal("golang", detail.Tags[0].Name)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, path, nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, path, nil).Code)

	w = suite.do(http.MethodPut, fmt.Sprintf("/posts/%d/tags/404", suite.post.ID), nil)
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPut, fmt.Sprintf("/posts/%d/tags/x", suite.post.ID), nil).Code)
}

func (suite *HandlerTestSuite) TestComments() {
	var comment model.Comment
	suite.create("/comments", gin.H{"post_id": suite.post.ID, "author_id": suite.author.ID, "content": "Nice"}, &comment)

	w := suite.do(http.MethodPost, "/comments", gin.H{"post_id": 404, "author_id": suite.author.ID, "content": "Lost"})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	w = suite.do(http.MethodGet, fmt.Sprintf("/posts/%d/comments", suite.post.ID), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"content":"Nice"`)

	// Comments go with their post
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, fmt.Sprintf("/posts/%d", suite.post.ID), nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, fmt.Sprintf("/comments/%d", comment.ID), nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, fmt.Sprintf("/posts/%d/comments", suite.post.ID), nil).Code)
}

func (suite *HandlerTestSuite) TestDuplicateTag() {
	w := suite.do(http.MethodPost, "/tags", gin.H{"name": "golang"})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestListPostsAndLookups() {
	w := suite.do(http.MethodGet, "/posts?q=rob", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"author_name":"Rob"`)

	w = suite.do(http.MethodGet, "/lookups/tags?q=GO", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(fmt.Sprintf(`{"options":[{"value":%d,"label":"golang"}]}`, suite.tag.ID), w.Body.String())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
