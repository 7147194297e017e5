package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"citysim/internal/service"
)

const (
	errFromDayInvalid = "invalid 'from_day'; use a non-negative integer"
	errToDayInvalid   = "invalid 'to_day'; use a non-negative integer"
	errRecentInvalid  = "invalid 'recent'; use a non-negative integer"
)

// parseDayParam reads an optional non-negative integer query parameter.
func parseDayParam(c *gin.Context, key string) (*int, bool) {
	qs := c.Query(key)
	if qs == "" {
		return nil, true
	}
	v, err := strconv.Atoi(qs)
	if err != nil || v < 0 {
		return nil, false
	}
	return &v, true
}

// @Summary      List event log entries
// @Description  Filters by tag (FIRE, EPIDEMIC, ECONOMIC CRISIS, GRANT, WARNING, CRITICAL), by inclusive day range, and keeps the most recent n matches.
// @Tags         logs
// @Produce      json
// @Param        tag       query   string  false  "Tag contained in the entry"  example(WARNING)
// @Param        from_day  query   int     false  "First day, inclusive"
// @Param        to_day    query   int     false  "Last day, inclusive"
// @Param        recent    query   int     false  "Keep only the last n matches"
// @Success      200   {object}  map[string]interface{}  "count, events"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/logs [get]
// @Security     BearerAuth
func (h *Handler) getLogs(c *gin.Context) {
	from, ok := parseDayParam(c, "from_day")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errFromDayInvalid})
		return
	}
	to, ok := parseDayParam(c, "to_day")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errToDayInvalid})
		return
	}
	f := service.LogFilter{Tag: c.Query("tag"), FromDay: from, ToDay: to}
	if recent, ok := parseDayParam(c, "recent"); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errRecentInvalid})
		return
	} else if recent != nil {
		f.Recent = *recent
	}

	events, err := h.services.EventLog.List(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err, "logs_list_failed", "tag", f.Tag)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}
