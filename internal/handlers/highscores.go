package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultTopScores = 10

type submitScoreRequest struct {
	Name string `json:"name" binding:"required" example:"mayor"`
}

// @Summary      Top scores
// @Tags         highscores
// @Produce      json
// @Param        limit  query     int  false  "Entries to return (default 10, max 100)"
// @Success      200    {array}   models.Highscore
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/highscores [get]
// @Security     BearerAuth
func (h *Handler) topScores(c *gin.Context) {
	limit := defaultTopScores
	if qs := c.Query("limit"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = v
	}

	scores, err := h.services.Highscores.TopScores(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err, "highscores_list_failed")
		return
	}
	c.JSON(http.StatusOK, scores)
}

// @Summary      Submit the current city's score
// @Tags         highscores
// @Accept       json
// @Produce      json
// @Param        body  body      submitScoreRequest  true  "Player name"
// @Success      201   {object}  models.Highscore
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/highscores [post]
// @Security     BearerAuth
func (h *Handler) submitScore(c *gin.Context) {
	var req submitScoreRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	hs, err := h.services.Highscores.SubmitScore(c.Request.Context(), req.Name)
	if err != nil {
		h.respondError(c, err, "highscore_submit_failed", "name", req.Name)
		return
	}
	c.JSON(http.StatusCreated, hs)
}
