package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aryam-rgb/mall-rent-nexus/internal/realtime"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

type EventsController struct {
	listener *realtime.Listener
}

func NewEventsController(listener *realtime.Listener) *EventsController {
	return &EventsController{listener: listener}
}

// GET /api/v1/events
//
// Server-sent events stream of row changes. Clients reconnect on drop; no
// replay is attempted.
func (c *EventsController) StreamHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromRequest(w, r); !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Streaming unsupported", nil)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := c.listener.Subscribe()
	defer c.listener.Unsubscribe(ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-ch:
			if !open {
				return
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
