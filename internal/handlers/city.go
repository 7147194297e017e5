package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"citysim/internal/city"
)

const (
	statusOK = "ok"

	errInvalidDays = "days must be an integer"
)

// Request DTO for constructing a building.
type buildRequest struct {
	Type string `json:"type" binding:"required" example:"HOSPITAL"`
}

// Request DTO for tax and VAT changes. Out-of-range rates are clamped.
type rateRequest struct {
	Rate *float64 `json:"rate" binding:"required" example:"0.15"`
}

// catalogEntry is the wire form of a catalog row.
type catalogEntry struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Cost        int    `json:"cost"`
	Upkeep      int    `json:"upkeep"`
	Capacity    int    `json:"capacity"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Building catalog
// @Tags         city
// @Produce      json
// @Success      200  {array}   catalogEntry
// @Router       /api/v1/catalog [get]
// @Security     BearerAuth
func (h *Handler) getCatalog(c *gin.Context) {
	types := city.AllBuildingTypes()
	out := make([]catalogEntry, 0, len(types))
	for _, t := range types {
		info := t.Info()
		out = append(out, catalogEntry{
			Code:        info.Code,
			Name:        info.Name,
			Description: info.Description,
			Category:    string(info.Category),
			Cost:        t.Cost(),
			Upkeep:      info.Upkeep,
			Capacity:    info.Capacity,
		})
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Get session state
// @Tags         city
// @Produce      json
// @Success      200  {object}  models.SessionState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/city/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "city_get_state_failed")
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Get city statistics
// @Tags         city
// @Produce      json
// @Success      200  {object}  city.Stats
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/city/stats [get]
// @Security     BearerAuth
func (h *Handler) getStats(c *gin.Context) {
	st, err := h.services.Monitoring.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "city_get_stats_failed")
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Construct a building
// @Description  Charges the construction cost. 402 when the budget is short, 409 after game over.
// @Tags         city
// @Accept       json
// @Produce      json
// @Param        body  body      buildRequest  true  "Building type"
// @Success      201   {object}  service.BuildResult
// @Failure      400   {object}  map[string]string
// @Failure      402   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/city/buildings [post]
// @Security     BearerAuth
func (h *Handler) build(c *gin.Context) {
	var req buildRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	bt, err := city.ParseBuildingType(req.Type)
	if err != nil {
		h.respondError(c, err, "city_build_failed", "type", req.Type)
		return
	}
	res, err := h.services.CityControl.Build(bt)
	if err != nil {
		h.respondError(c, err, "city_build_failed", "type", bt.String())
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary      Set income tax rate
// @Tags         city
// @Accept       json
// @Produce      json
// @Param        body  body      rateRequest  true  "Rate, clamped to 0..0.40"
// @Success      200   {object}  map[string]float64
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/city/tax [put]
// @Security     BearerAuth
func (h *Handler) setTaxRate(c *gin.Context) {
	var req rateRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"tax_rate": h.services.CityControl.SetTaxRate(*req.Rate)})
}

// @Summary      Set VAT rate
// @Tags         city
// @Accept       json
// @Produce      json
// @Param        body  body      rateRequest  true  "Rate, clamped to 0..0.25"
// @Success      200   {object}  map[string]float64
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/city/vat [put]
// @Security     BearerAuth
func (h *Handler) setVatRate(c *gin.Context) {
	var req rateRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"vat_rate": h.services.CityControl.SetVatRate(*req.Rate)})
}

// @Summary      Advance the simulation
// @Description  Runs up to days ticks (default 1), stopping early at game over.
// @Tags         city
// @Produce      json
// @Param        days  query     int  false  "Days to simulate (1..365)"
// @Success      200   {object}  service.TickResult
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/city/tick [post]
// @Security     BearerAuth
func (h *Handler) tick(c *gin.Context) {
	days := 1
	if qs := c.Query("days"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDays})
			return
		}
		days = v
	}

	res, err := h.services.CityControl.Advance(days)
	if err != nil {
		h.respondError(c, err, "city_tick_failed", "days", days)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Found a new city
// @Description  Discards the current city, including an ended one.
// @Tags         city
// @Produce      json
// @Success      201  {object}  models.SessionState
// @Router       /api/v1/city/new [post]
// @Security     BearerAuth
func (h *Handler) newCity(c *gin.Context) {
	h.log.Infow("city_reset", "mayor_id", c.GetInt("mayorID"))
	c.JSON(http.StatusCreated, h.services.CityControl.NewCity())
}
