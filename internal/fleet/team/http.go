package team

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quangphan/fleetra/internal/platform/middleware"
	requestutil "github.com/quangphan/fleetra/internal/platform/request"
	"github.com/quangphan/fleetra/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listTeams)
	router.Get("/{id}", handler.getTeam)

	router.Group(func(write chi.Router) {
		write.Use(middleware.RequireManageFleet)
		write.Post("/", handler.createTeam)
		write.Put("/{id}", handler.updateTeam)
		write.Delete("/{id}", handler.deleteTeam)
	})
}

type teamPayload struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

func (handler *Handler) listTeams(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	teams, err := handler.service.ListTeams(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, teams)
}

func (handler *Handler) getTeam(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	team, err := handler.service.GetTeam(request.Context(), ownerID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, team)
}

func (handler *Handler) createTeam(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload teamPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	team := &Team{OwnerID: ownerID, Name: payload.Name, Region: payload.Region}
	if err := handler.service.CreateTeam(request.Context(), team); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, team)
}

func (handler *Handler) updateTeam(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload teamPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	team := &Team{
		ID:      requestutil.Param(request, "id"),
		OwnerID: ownerID,
		Name:    payload.Name,
		Region:  payload.Region,
	}
	if err := handler.service.UpdateTeam(request.Context(), team); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, team)
}

func (handler *Handler) deleteTeam(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteTeam(request.Context(), ownerID, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
