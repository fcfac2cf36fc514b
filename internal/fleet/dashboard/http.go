// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/quangphan/fleetra/internal/platform/request"
	"github.com/quangphan/fleetra/internal/platform/respond"
	"github.com/quangphan/fleetra/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/stats", handler.getStats)
	router.Get("/activity", handler.getWeeklyActivity)
	router.Get("/alerts", handler.listAlerts)
	router.Post("/alerts/{id}/ack", handler.acknowledgeAlert)
}

func (handler *Handler) getStats(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	stats, err := handler.service.GetStats(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stats)
}

func (handler *Handler) getWeeklyActivity(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	activity, err := handler.service.GetWeeklyActivity(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, activity)
}

func (handler *Handler) listAlerts(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	openOnly := convert.ToBool(request.URL.Query().Get("open"))
	alerts, err := handler.service.ListAlerts(request.Context(), ownerID, openOnly)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, alerts)
}

func (handler *Handler) acknowledgeAlert(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AcknowledgeAlert(request.Context(), ownerID, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"message": "Alert acknowledged"})
}
