package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/alimgiray/folio/internal/middleware"
	"github.com/alimgiray/folio/internal/models"
	"github.com/alimgiray/folio/internal/services"
	"github.com/alimgiray/folio/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const wsWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type ProjectHandler struct {
	source services.ProjectSource
}

func NewProjectHandler(source services.ProjectSource) *ProjectHandler {
	return &ProjectHandler{
		source: source,
	}
}

// resolveFeed runs one feed bound to ctx and returns its final snapshot
func (h *ProjectHandler) resolveFeed(ctx context.Context) (models.FeedSnapshot, error) {
	feed := services.NewProjectFeed(h.source)
	defer feed.Close()

	feed.Start(ctx)
	if err := feed.Wait(ctx); err != nil {
		return models.FeedSnapshot{}, err
	}
	return feed.Snapshot(), nil
}

// ListProjects returns the resolved feed as JSON
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	snapshot, err := h.resolveFeed(c.Request.Context())
	if err != nil {
		// Client went away before the feed resolved
		c.Status(499)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// ProjectsPage renders the projects grid server-side for clients without scripting
func (h *ProjectHandler) ProjectsPage(c *gin.Context) {
	snapshot, err := h.resolveFeed(c.Request.Context())
	if err != nil {
		c.Status(499)
		return
	}

	c.HTML(http.StatusOK, "projects", gin.H{
		"Title": "Projects",
		"User":  middleware.GetSession(c),
		"Feed":  snapshot,
		"Year":  time.Now().Year(),
	})
}

// Stream pushes the feed state over a websocket: the loading snapshot right
// away, then the terminal snapshot. Closing the socket cancels the fetch.
func (h *ProjectHandler) Stream(c *gin.Context) {
	log := logger.Component("project_stream")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	feed := services.NewProjectFeed(h.source)
	defer feed.Close()

	// The client never sends anything; a read error means it is gone.
	// Clear the deadline the http.Server left on the hijacked connection.
	conn.SetReadDeadline(time.Time{})
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeSnapshot(conn, feed.Snapshot()); err != nil {
		log.WithError(err).Debug("Failed to write loading snapshot")
		return
	}

	feed.Start(ctx)
	select {
	case <-feed.Done():
	case <-ctx.Done():
		log.Debug("Client left before the feed resolved")
		return
	}

	// A feed closed under us never resolves; there is nothing final to send
	if !feed.State().IsTerminal() {
		return
	}

	if err := writeSnapshot(conn, feed.Snapshot()); err != nil {
		log.WithError(err).Debug("Failed to write final snapshot")
		return
	}

	conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "feed resolved"))
}

func writeSnapshot(conn *websocket.Conn, snapshot models.FeedSnapshot) error {
	conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(snapshot)
}
