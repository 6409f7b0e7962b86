// Package test5 serves the test5 schema over HTTP. PUT bodies must carry the
// updated_at value last read; a stale value answers 409 CONFLICT.
package test5

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/demodb/internal/handlers"
	"github.com/yukikurage/demodb/internal/middleware"
	service "github.com/yukikurage/demodb/internal/services/test5"
	"github.com/yukikurage/demodb/internal/utils"
)

type Handler struct {
	service *service.Service
}

func NewHandler(s *service.Service) *Handler {
	return &Handler{service: s}
}

// Register mounts the schema's routes on rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	id := middleware.RequireID()

	users := rg.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.GET("/:id", id, h.GetUser)
		users.PUT("/:id", id, h.UpdateUser)
		users.DELETE("/:id", id, h.DeleteUser)
	}

	projects := rg.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/:id", id, h.GetProject)
		projects.PUT("/:id", id, h.UpdateProject)
		projects.DELETE("/:id", id, h.DeleteProject)
	}

	tickets := rg.Group("/tickets")
	{
		tickets.GET("", h.ListTickets)
		tickets.POST("", h.CreateTicket)
		tickets.GET("/:id", id, h.GetTicket)
		tickets.PUT("/:id", id, h.UpdateTicket)
		tickets.DELETE("/:id", id, h.DeleteTicket)
		tickets.GET("/:id/time-entries", id, h.ListTimeEntries)
	}

	entries := rg.Group("/time-entries")
	{
		entries.POST("", h.CreateTimeEntry)
		entries.GET("/:id", id, h.GetTimeEntry)
		entries.PUT("/:id", id, h.UpdateTimeEntry)
		entries.DELETE("/:id", id, h.DeleteTimeEntry)
	}

	lookups := rg.Group("/lookups")
	{
		lookups.GET("/users", h.LookupUsers)
		lookups.GET("/project-owners", h.LookupProjectOwners)
		lookups.GET("/projects", h.LookupProjects)
		lookups.GET("/tickets", h.LookupTickets)
	}
}

// Users

func (h *Handler) ListUsers(c *gin.Context) {
	p := utils.GetListParams(c)
	users, err := h.service.ListUsers(c.Request.Context(), p.Filter, p.Page)
	handlers.List(c, users, p.Page, err)
}

func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), handlers.ID(c))
	handlers.OK(c, http.StatusOK, user, err)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var input service.UserInput
	if !handlers.Bind(c, &input) {
		return
	}
	user, err := h.service.CreateUser(c.Request.Context(), input)
	handlers.OK(c, http.StatusCreated, user, err)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var input service.UpdateUserInput
	if !handlers.Bind(c, &input) {
		return
	}
	user, err := h.service.UpdateUser(c.Request.Context(), handlers.ID(c), input)
	handlers.OK(c, http.StatusOK, user, err)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	handlers.NoContent(c, h.service.DeleteUser(c.Request.Context(), handlers.ID(c)))
}

func (h *Handler) LookupUsers(c *gin.Context) {
	options, err := h.service.LookupUsers(c.Request.Context(), c.Query("q"))
	handlers.Options(c, options, err)
}

func (h *Handler) LookupProjectOwners(c *gin.Context) {
	options, err := h.service.LookupProjectOwners(c.Request.Context())
	handlers.Options(c, options, err)
}

// Projects

func (h *Handler) ListProjects(c *gin.Context) {
	p := utils.GetListParams(c)
	projects, err := h.service.ListProjects(c.Request.Context(), p.Filter, p.Page)
	handlers.List(c, projects, p.Page, err)
}

func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.service.GetProject(c.Request.Context(), handlers.ID(c))
	handlers.OK(c, http.StatusOK, project, err)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var input service.CreateProjectInput
	if !handlers.Bind(c, &input) {
		return
	}
	project, err := h.service.CreateProject(c.Request.Context(), input)
	handlers.OK(c, http.StatusCreated, project, err)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	var input service.UpdateProjectInput
	if !handlers.Bind(c, &input) {
		return
	}
	project, err := h.service.UpdateProject(c.Request.Context(), handlers.ID(c), input)
	handlers.OK(c, http.StatusOK, project, err)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	handlers.NoContent(c, h.service.DeleteProject(c.Request.Context(), handlers.ID(c)))
}

func (h *Handler) LookupProjects(c *gin.Context) {
	options, err := h.service.LookupProjects(c.Request.Context(), c.Query("q"))
	handlers.Options(c, options, err)
}

// Tickets

func (h *Handler) ListTickets(c *gin.Context) {
	p := utils.GetListParams(c)
	tickets, err := h.service.ListTickets(c.Request.Context(), p.Filter, p.Page)
	handlers.List(c, tickets, p.Page, err)
}

func (h *Handler) GetTicket(c *gin.Context) {
	ticket, err := h.service.GetTicket(c.Request.Context(), handlers.ID(c))
	handlers.OK(c, http.StatusOK, ticket, err)
}

func (h *Handler) CreateTicket(c *gin.Context) {
	var input service.CreateTicketInput
	if !handlers.Bind(c, &input) {
		return
	}
	ticket, err := h.service.CreateTicket(c.Request.Context(), input)
	handlers.OK(c, http.StatusCreated, ticket, err)
}

func (h *Handler) UpdateTicket(c *gin.Context) {
	var input service.UpdateTicketInput
	if !handlers.Bind(c, &input) {
		return
	}
	ticket, err := h.service.UpdateTicket(c.Request.Context(), handlers.ID(c), input)
	handlers.OK(c, http.StatusOK, ticket, err)
}

func (h *Handler) DeleteTicket(c *gin.Context) {
	handlers.NoContent(c, h.service.DeleteTicket(c.Request.Context(), handlers.ID(c)))
}

func (h *Handler) LookupTickets(c *gin.Context) {
	options, err := h.service.LookupTickets(c.Request.Context(), c.Query("q"))
	handlers.Options(c, options, err)
}

// Time entries

func (h *Handler) ListTimeEntries(c *gin.Context) {
	entries, err := h.service.ListTimeEntries(c.Request.Context(), handlers.ID(c))
	handlers.List(c, entries, 1, err)
}

func (h *Handler) GetTimeEntry(c *gin.Context) {
	entry, err := h.service.GetTimeEntry(c.Request.Context(), handlers.ID(c))
	handlers.OK(c, http.StatusOK, entry, err)
}

func (h *Handler) CreateTimeEntry(c *gin.Context) {
	var input service.TimeEntryInput
	if !handlers.Bind(c, &input) {
		return
	}
	entry, err := h.service.CreateTimeEntry(c.Request.Context(), input)
	handlers.OK(c, http.StatusCreated, entry, err)
}

func (h *Handler) UpdateTimeEntry(c *gin.Context) {
	var input service.UpdateTimeEntryInput
	if !handlers.Bind(c, &input) {
		return
	}
	entry, err := h.service.UpdateTimeEntry(c.Request.Context(), handlers.ID(c), input)
	handlers.OK(c, http.StatusOK, entry, err)
}

func (h *Handler) DeleteTimeEntry(c *gin.Context) {
	handlers.NoContent(c, h.service.DeleteTimeEntry(c.Request.Context(), handlers.ID(c)))
}
