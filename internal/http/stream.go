package http

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"go.ngs.io/sky-api/internal/domain"
)

const (
	defaultStreamInterval    = time.Second
	defaultStreamMinInterval = time.Second
	maxStreamInterval        = time.Minute
	streamWriteWait          = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamObservations handles GET /v1/stream. After the
// websocket upgrade it sends one horizon frame per interval until the
// client disconnects or count frames have been sent.
func (h *Handler) StreamObservations(c *gin.Context) {
	req, err := h.observationRequest(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	offset, err := parseZone(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	zone := domain.Zone(offset)

	interval := defaultStreamInterval
	if s := c.Query("interval"); s != "" {
		if interval, err = time.ParseDuration(s); err != nil {
			respondError(c, http.StatusBadRequest, fmt.Errorf("invalid interval: %w", domain.ErrFormat))
			return
		}
	}
	if interval < h.streamMinInterval {
		interval = h.streamMinInterval
	} else if interval > maxStreamInterval {
		interval = maxStreamInterval
	}

	count := 0
	if s := c.Query("count"); s != "" {
		if count, err = strconv.Atoi(s); err != nil || count < 0 {
			respondError(c, http.StatusBadRequest, fmt.Errorf("invalid count: %w", domain.ErrFormat))
			return
		}
	}

	// Reject bad parameters before switching protocols.
	req.Time = h.now().In(zone)
	first, err := h.observationUC.Frame(req)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ERR: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	h.metrics.streamClients.Inc()
	defer h.metrics.streamClients.Dec()

	// Drain client messages so close frames are processed.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	frame := first
	for sent := 0; ; {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
		h.metrics.streamFrames.Inc()
		sent++
		if count > 0 && sent >= count {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(streamWriteWait))
			return
		}

		select {
		case <-closed:
			return
		case <-ticker.C:
		}

		req.Time = h.now().In(zone)
		if frame, err = h.observationUC.Frame(req); err != nil {
			log.Printf("ERR: stream frame: %v", err)
			return
		}
	}
}
