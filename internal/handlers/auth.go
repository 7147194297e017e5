package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type credentials struct {
	Name     string `json:"name" binding:"required" example:"ada"`
	Password string `json:"password" binding:"required" example:"hunter22"`
}

// @Summary      Register a mayor
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentials  true  "Mayor name and password"
// @Success      201   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var in credentials
	if !h.bindJSONOrBadRequest(c, &in) {
		return
	}
	id, err := h.services.SignUp(c.Request.Context(), in.Name, in.Password)
	if err != nil {
		h.respondError(c, err, "mayor_sign_up_failed", "name", in.Name)
		return
	}
	h.log.Infow("mayor_signed_up", "mayor_id", id)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Sign in as a mayor
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentials  true  "Mayor name and password"
// @Success      200   {object}  service.Token
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var in credentials
	if !h.bindJSONOrBadRequest(c, &in) {
		return
	}
	tok, err := h.services.SignIn(c.Request.Context(), in.Name, in.Password)
	if err != nil {
		h.respondError(c, err, "mayor_sign_in_failed", "name", in.Name)
		return
	}
	c.JSON(http.StatusOK, tok)
}
