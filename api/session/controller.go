// Package sessionapi exposes maze sessions over HTTP.
package sessionapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	eventTimeout     = 2 * time.Second
	defaultRunsLimit = 20
)

// Controller manages session operations.
type Controller struct {
	manager i.SessionManager
}

// NewController initializes a Controller.
func NewController(m i.SessionManager) (*Controller, error) {
	if m == nil {
		return nil, errors.New("session controller needs a session manager")
	}
	return &Controller{manager: m}, nil
}

// RegisterPublic registers public routes.
func (sc *Controller) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/sessions", sc.create)
}

// RegisterProtected registers protected routes.
func (sc *Controller) RegisterProtected(route *gin.RouterGroup) {
	sessions := route.Group("/sessions/:" + identity.SessionParam)
	{
		sessions.GET("", sc.snapshot)
		sessions.DELETE("", sc.close)
		sessions.POST("/clicks", sc.click)
		sessions.POST("/keys", sc.key)
		sessions.GET("/runs", sc.runs)
	}
}

// create starts a session of the requested kind.
func (sc *Controller) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newSession := sc.manager.NewEditor
	if request.Kind == game.ModeRace.String() {
		newSession = sc.manager.NewRace
	}
	s, err := newSession()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating session"})
		return
	}

	ctx.JSON(http.StatusCreated, s)
}

// snapshot returns the current state of a session.
func (sc *Controller) snapshot(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := withTimeout(ctx)
	defer cancel()
	snap, err := sc.manager.Snapshot(timeoutCtx, id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewSnapshotResponse(snap))
}

// click maps pixel coordinates to a cell and applies the click.
func (sc *Controller) click(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request ClickRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	button, err := game.ParseButton(request.Button)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	layout, err := sc.manager.Layout(id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	pos, ok := layout.Locate(*request.X, *request.Y)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "click outside the board"})
		return
	}

	sc.dispatch(ctx, id, game.Click(pos, button))
}

// key applies a key press.
func (sc *Controller) key(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request KeyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	key, err := game.ParseKey(request.Key)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sc.dispatch(ctx, id, game.Press(key))
}

// runs returns the solve history of an editor session.
func (sc *Controller) runs(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", strconv.Itoa(defaultRunsLimit)), 10, 64)
	if err != nil || limit <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	timeoutCtx, cancel := withTimeout(ctx)
	defer cancel()
	runs, err := sc.manager.Runs(timeoutCtx, id, limit)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"runs": runs})
}

// close ends a session.
func (sc *Controller) close(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := sc.manager.Close(id); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (sc *Controller) dispatch(ctx *gin.Context, id uuid.UUID, ev game.Event) {
	timeoutCtx, cancel := withTimeout(ctx)
	defer cancel()

	snap, err := sc.manager.Dispatch(timeoutCtx, id, ev)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewSnapshotResponse(snap))
}

func withTimeout(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), eventTimeout)
}

func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(identity.SessionParam))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

// StatusOf maps service and game errors to HTTP status codes.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrRaceFinished):
		return http.StatusConflict
	case errors.Is(err, maze.ErrOutOfBounds),
		errors.Is(err, game.ErrUnknownEvent),
		errors.Is(err, game.ErrUnboundKey),
		errors.Is(err, service.ErrWrongSessionKind):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrHistoryDisabled),
		errors.Is(err, service.ErrRankingDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func abortWithError(ctx *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	ctx.JSON(status, gin.H{"error": msg})
}
