package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"backlog/backend/internal/apperror"
	"backlog/backend/internal/models"
	"backlog/backend/internal/service"
	"backlog/backend/internal/store"
	"backlog/backend/internal/telemetry"
)

// ErrorResponse is the JSON shape of every error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GameHandler serves the /games routes. All collaborators are injected;
// the handler holds no mutable state of its own.
type GameHandler struct {
	store     store.GameStore
	validator *service.Validator
	telemetry telemetry.Client
	logger    zerolog.Logger
}

func NewGameHandler(s store.GameStore, v *service.Validator, tc telemetry.Client, logger zerolog.Logger) *GameHandler {
	return &GameHandler{
		store:     s,
		validator: v,
		telemetry: tc,
		logger:    logger,
	}
}

// ListGames godoc
// @Summary      List all games
// @Description  Retrieves every game in the backlog.
// @Tags         games
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   models.Game
// @Failure      401  "Invalid or missing API key"
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.store.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGame godoc
// @Summary      Get a game by id or title
// @Description  A numeric key looks up by Steam app id, anything else by exact title (first match).
// @Tags         games
// @Produce      json
// @Security     ApiKeyAuth
// @Param        key  path  string  true  "Steam app id or exact title"
// @Success      200  {object}  models.Game
// @Failure      401  "Invalid or missing API key"
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{key} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	key := c.Param("key")

	var (
		game *models.Game
		err  error
	)
	if id, convErr := strconv.Atoi(key); convErr == nil {
		game, err = h.store.Get(c.Request.Context(), id)
	} else {
		game, err = h.store.GetByTitle(c.Request.Context(), key)
	}

	if errors.Is(err, apperror.ErrNotFound) {
		h.logger.Warn().Str("key", key).Msg("game not found")
		h.telemetry.TrackEvent("GameNotFound", map[string]string{"Key": key}, nil)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Adds a game to the backlog. The Steam app id is caller-supplied and must be unique.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        input  body  models.Game  true  "Game"
// @Success      201  {object}  models.Game
// @Failure      400  {object}  ErrorResponse
// @Failure      401  "Invalid or missing API key"
// @Failure      409  {object}  ErrorResponse "Steam app id already exists"
// @Failure      500  {object}  ErrorResponse
// @Router       /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var game models.Game
	if err := c.ShouldBindJSON(&game); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.store.Insert(c.Request.Context(), &game); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			h.logger.Warn().Int("steamAppId", game.SteamAppId).Msg("game already exists")
			h.telemetry.TrackEvent("GameCreationConflict", map[string]string{
				"SteamAppId": strconv.Itoa(game.SteamAppId),
			}, nil)
		}
		h.respondError(c, err)
		return
	}

	h.telemetry.TrackEvent("GameCreated", map[string]string{
		"Title":      game.Title,
		"SteamAppId": strconv.Itoa(game.SteamAppId),
	}, nil)
	c.JSON(http.StatusCreated, game)
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Replaces every mutable field of the game. The Steam app id cannot change.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id     path  int          true  "Steam app id"
// @Param        input  body  models.Game  true  "New game state"
// @Success      200  {object}  models.Game
// @Failure      400  {object}  ErrorResponse
// @Failure      401  "Invalid or missing API key"
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return
	}

	existing, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			h.logger.Warn().Int("steamAppId", id).Msg("game not found")
		}
		h.respondError(c, err)
		return
	}

	var input models.Game
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.store.Update(c.Request.Context(), id, &input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if !existing.Completed && updated.Completed {
		h.telemetry.TrackEvent("GameCompleted", map[string]string{
			"Title":  updated.Title,
			"GameId": strconv.Itoa(id),
		}, nil)
	}
	h.telemetry.TrackEvent("GameUpdated", map[string]string{"GameId": strconv.Itoa(id)}, nil)

	c.JSON(http.StatusOK, updated)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Tags         games
// @Security     ApiKeyAuth
// @Param        id  path  int  true  "Steam app id"
// @Success      204  "Deleted"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  "Invalid or missing API key"
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return
	}

	game, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			h.logger.Warn().Int("steamAppId", id).Msg("game not found")
		}
		h.respondError(c, err)
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	h.telemetry.TrackEvent("GameDeleted", map[string]string{
		"Title":  game.Title,
		"GameId": strconv.Itoa(id),
	}, nil)
	c.Status(http.StatusNoContent)
}

// ValidateGames godoc
// @Summary      Re-validate the whole backlog
// @Description  Applies the consistency rules to every game in one pass and reports how many rows changed.
// @Tags         games
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  service.ValidationResult
// @Failure      401  "Invalid or missing API key"
// @Failure      500  {object}  ErrorResponse
// @Router       /games/validate [patch]
func (h *GameHandler) ValidateGames(c *gin.Context) {
	result, err := h.validator.ValidateAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.telemetry.TrackEvent("ValidationTriggered", nil, map[string]float64{
		"UpdatedCount": float64(result.UpdatedCount),
		"TotalGames":   float64(result.TotalGames),
	})
	c.JSON(http.StatusOK, result)
}

// respondError maps a domain error to a status code. Expected errors get
// their message; anything else is a storage fault, logged and reported to
// telemetry without leaking detail to the client.
func (h *GameHandler) respondError(c *gin.Context, err error) {
	message := err.Error()
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
	case errors.Is(err, apperror.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: message})
	case errors.Is(err, apperror.ErrBadInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
	default:
		h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("storage fault")
		h.telemetry.TrackEvent("StorageFault", map[string]string{"Path": c.Request.URL.Path}, nil)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
