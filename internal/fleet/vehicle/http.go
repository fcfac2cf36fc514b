// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package vehicle

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quangphan/fleetra/internal/platform/middleware"
	requestutil "github.com/quangphan/fleetra/internal/platform/request"
	"github.com/quangphan/fleetra/internal/platform/respond"
	"github.com/quangphan/fleetra/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the vehicle routes. Reads are open to every
// authenticated role; writes require a fleet-managing role.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listVehicles)
	router.Get("/{id}", handler.getVehicle)

	router.Group(func(write chi.Router) {
		write.Use(middleware.RequireManageFleet)
		write.Post("/", handler.createVehicle)
		write.Put("/{id}", handler.updateVehicle)
		write.Delete("/{id}", handler.deleteVehicle)
	})
}

// vehiclePayload is the JSON body for create and update.
type vehiclePayload struct {
	Plate     string `json:"plate"`
	Label     string `json:"label"`
	Status    string `json:"status"`
	MileageKm int    `json:"mileageKm"`
}

func (handler *Handler) listVehicles(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	vehicles, total, err := handler.service.ListVehicles(request.Context(), ownerID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, vehicles, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getVehicle(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	vehicle, err := handler.service.GetVehicle(request.Context(), ownerID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, vehicle)
}

func (handler *Handler) createVehicle(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload vehiclePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	vehicle := &Vehicle{
		OwnerID:   ownerID,
		Plate:     payload.Plate,
		Label:     payload.Label,
		Status:    payload.Status,
		MileageKm: payload.MileageKm,
	}
	if err := handler.service.CreateVehicle(request.Context(), vehicle); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, vehicle)
}

func (handler *Handler) updateVehicle(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload vehiclePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	vehicle := &Vehicle{
		ID:        requestutil.Param(request, "id"),
		OwnerID:   ownerID,
		Plate:     payload.Plate,
		Label:     payload.Label,
		Status:    payload.Status,
		MileageKm: payload.MileageKm,
	}
	if err := handler.service.UpdateVehicle(request.Context(), vehicle); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, vehicle)
}

func (handler *Handler) deleteVehicle(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteVehicle(request.Context(), ownerID, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
