// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package driver

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

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listDrivers)
	router.Get("/{id}", handler.getDriver)

	router.Group(func(write chi.Router) {
		write.Use(middleware.RequireManageFleet)
		write.Post("/", handler.createDriver)
		write.Put("/{id}", handler.updateDriver)
		write.Delete("/{id}", handler.deleteDriver)
	})
}

// driverPayload is the JSON body for create and update. Null assignment
// fields unassign the driver.
type driverPayload struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	LicenseNo string  `json:"licenseNo"`
	TeamID    *string `json:"teamId"`
	VehicleID *string `json:"vehicleId"`
}

func (handler *Handler) listDrivers(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	drivers, total, err := handler.service.ListDrivers(request.Context(), ownerID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, drivers, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getDriver(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	driver, err := handler.service.GetDriver(request.Context(), ownerID, requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, driver)
}

func (handler *Handler) createDriver(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload driverPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	driver := &Driver{
		OwnerID:   ownerID,
		Name:      payload.Name,
		Phone:     payload.Phone,
		LicenseNo: payload.LicenseNo,
		TeamID:    payload.TeamID,
		VehicleID: payload.VehicleID,
	}
	if err := handler.service.CreateDriver(request.Context(), driver); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, driver)
}

func (handler *Handler) updateDriver(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload driverPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	driver := &Driver{
		ID:        requestutil.Param(request, "id"),
		OwnerID:   ownerID,
		Name:      payload.Name,
		Phone:     payload.Phone,
		LicenseNo: payload.LicenseNo,
		TeamID:    payload.TeamID,
		VehicleID: payload.VehicleID,
	}
	if err := handler.service.UpdateDriver(request.Context(), driver); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, driver)
}

func (handler *Handler) deleteDriver(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDriver(request.Context(), ownerID, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
