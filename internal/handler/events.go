package handler

import (
	"net/http"
	"time"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/eventlog"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/repository"
)

const (
	defaultEventsLimit = 50
	maxEventsLimit     = 500
)

// EventsResponse wraps logged events
type EventsResponse struct {
	Events []repository.EventLogEntry `json:"events"`
}

// HandleGetEvents returns logged domain events, newest first
// @Summary List logged events
// @Tags events
// @Produce json
// @Param account query string false "Filter by account address"
// @Param type query string false "Filter by event type"
// @Param since query string false "Only events at or after this RFC 3339 time"
// @Param limit query int false "Maximum number of events"
// @Success 200 {object} EventsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/events [get]
func HandleGetEvents(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w, defaultEventsLimit)
		if !ok {
			return
		}
		if limit > maxEventsLimit {
			limit = maxEventsLimit
		}

		filter := repository.EventLogFilter{
			Account:   GetOptionalQueryParam(r, "account", ""),
			EventType: GetOptionalQueryParam(r, "type", ""),
			Limit:     limit,
		}
		if raw := r.URL.Query().Get("since"); raw != "" {
			since, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
				return
			}
			filter.Since = &since
		}

		events, err := svc.GetEvents(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, opGetEvents, err)
			return
		}
		if events == nil {
			events = []repository.EventLogEntry{}
		}
		respondJSON(w, http.StatusOK, EventsResponse{Events: events})
	}
}
