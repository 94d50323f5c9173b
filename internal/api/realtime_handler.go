package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/core"
	"jusgestor-backend-go/internal/realtime"
)

// watchable maps the streamable collections to the view action that
// gates them.
var watchable = map[string]authz.Action{
	"clients":         authz.ActionClientView,
	"processes":       authz.ActionProcessView,
	"events":          authz.ActionEventView,
	"financial_tasks": authz.ActionFinanceView,
}

// RealtimeHandler streams office-scoped document changes over
// WebSocket.
type RealtimeHandler struct {
	watcher   *realtime.Watcher
	resolver  *core.IdentityResolver
	clientURL string
	logger    *zap.Logger
}

// NewRealtimeHandler creates a RealtimeHandler.
func NewRealtimeHandler(watcher *realtime.Watcher, resolver *core.IdentityResolver, clientURL string, logger *zap.Logger) *RealtimeHandler {
	return &RealtimeHandler{watcher: watcher, resolver: resolver, clientURL: clientURL, logger: logger}
}

func (h *RealtimeHandler) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || origin == h.clientURL
		},
	}
}

// Watch handles GET /ws/:collection. The caller must be authenticated
// (the auth middleware accepts ?token= for this route) and their role
// must be able to view the collection. Lawyers only receive the
// process changes they own or collaborate on.
func (h *RealtimeHandler) Watch(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	collection := c.Param("collection")
	action, ok := watchable[collection]
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown collection"})
		return
	}

	caller, err := h.resolver.Resolve(c.Request.Context(), uid)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !caller.Can(action) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Your role cannot watch this collection"})
		return
	}

	up := h.upgrader()
	conn, err := up.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sub := h.watcher.Watch(c.Request.Context(), collection, caller.OfficeID)
	defer sub.Unsubscribe()

	// Drain the read side so close frames and pings are processed; any
	// read error means the peer is gone.
	peerGone := make(chan struct{})
	go func() {
		defer close(peerGone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case change, open := <-sub.Events():
			if !open {
				return
			}
			if !visibleTo(caller, collection, change) {
				continue
			}
			if err := conn.WriteJSON(change); err != nil {
				return
			}
		case <-peerGone:
			return
		}
	}
}

// visibleTo applies the per-process ACL on the stream: lawyers only
// see processes they own or collaborate on. Other collections are
// already office-scoped by the watcher query.
func visibleTo(caller core.Identity, collection string, change realtime.Change) bool {
	if collection != "processes" || caller.Role != authz.RoleLawyer {
		return true
	}
	// Removals carry no document data, so they cannot be attributed to
	// an owner; suppress them for lawyers.
	if change.Data == nil {
		return false
	}
	if owner, ok := change.Data["ownerId"].(string); ok && owner == caller.UID {
		return true
	}
	if collabs, ok := change.Data["collaboratorIds"].([]interface{}); ok {
		for _, v := range collabs {
			if s, ok := v.(string); ok && s == caller.UID {
				return true
			}
		}
	}
	return false
}
