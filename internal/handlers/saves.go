package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      List save slots
// @Tags         saves
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, slots"
// @Router       /api/v1/saves [get]
// @Security     BearerAuth
func (h *Handler) listSaves(c *gin.Context) {
	slots, err := h.services.Saves.ListSlots(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "saves_list_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(slots), "slots": slots})
}

// @Summary      Save the city
// @Description  Stores the current city under slot, replacing any previous save.
// @Tags         saves
// @Produce      json
// @Param        slot  path      string  true  "Slot name"
// @Success      200   {object}  models.SaveSlot
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/saves/{slot} [post]
// @Security     BearerAuth
func (h *Handler) saveCity(c *gin.Context) {
	slot := c.Param("slot")
	saved, err := h.services.Saves.Save(c.Request.Context(), slot)
	if err != nil {
		h.respondError(c, err, "save_failed", "slot", slot)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// @Summary      Load a saved city
// @Description  404 when the slot does not exist, 422 when it cannot be decoded. The current city is kept on failure.
// @Tags         saves
// @Produce      json
// @Param        slot  path      string  true  "Slot name"
// @Success      200   {object}  models.SessionState
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/v1/saves/{slot}/load [post]
// @Security     BearerAuth
func (h *Handler) loadCity(c *gin.Context) {
	slot := c.Param("slot")
	st, err := h.services.Saves.Load(c.Request.Context(), slot)
	if err != nil {
		h.respondError(c, err, "load_failed", "slot", slot)
		return
	}
	c.JSON(http.StatusOK, st)
}
