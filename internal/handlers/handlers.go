// Package handlers holds the request helpers shared by the per-schema
// HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/demodb/internal/constants"
	"github.com/yukikurage/demodb/internal/dto"
	apierrors "github.com/yukikurage/demodb/internal/errors"
	"github.com/yukikurage/demodb/internal/middleware"
)

// ID returns the :id path parameter parsed by middleware.RequireID.
func ID(c *gin.Context) uint64 {
	id, _ := middleware.GetID(c, constants.ContextKeyID)
	return id
}

// Bind decodes the JSON body into obj, answering 400 when it cannot.
func Bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apierrors.BadRequest(c, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// List writes one page of items.
func List[T any](c *gin.Context, items []T, page int, err error) {
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse[T]{Items: items, Page: page, PageSize: constants.PageSize})
}

// Options writes lookup options.
func Options[T any](c *gin.Context, options []T, err error) {
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OptionsResponse[T]{Options: options})
}

// OK writes v with the given status, or the mapped error.
func OK(c *gin.Context, status int, v any, err error) {
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.JSON(status, v)
}

// NoContent answers 204, or the mapped error.
func NoContent(c *gin.Context, err error) {
	if err != nil {
		apierrors.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
