// Package leaderboardapi exposes the race leaderboard over HTTP.
package leaderboardapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	sessionapi "github.com/beka-birhanu/vinom-maze/api/session"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const defaultLimit = 10

// Controller serves the best race scores.
type Controller struct {
	manager i.SessionManager
}

// NewController initializes a Controller.
func NewController(m i.SessionManager) (*Controller, error) {
	if m == nil {
		return nil, errors.New("leaderboard controller needs a session manager")
	}
	return &Controller{manager: m}, nil
}

// RegisterPublic registers public routes.
func (lc *Controller) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard", lc.top)
}

// RegisterProtected registers protected routes.
func (lc *Controller) RegisterProtected(route *gin.RouterGroup) {}

// top returns up to ?limit best scores, fewest moves first.
func (lc *Controller) top(ctx *gin.Context) {
	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", strconv.Itoa(defaultLimit)), 10, 64)
	if err != nil || limit <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()
	scores, err := lc.manager.Leaderboard(timeoutCtx, limit)
	if err != nil {
		status := sessionapi.StatusOf(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			msg = "error while reading leaderboard"
		}
		ctx.JSON(status, gin.H{"error": msg})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"scores": scores})
}
