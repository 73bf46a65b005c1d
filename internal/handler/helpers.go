package handler

import (
	"net/http"
	"strconv"

	"packingapp/internal/apierror"
	"packingapp/internal/middleware"
	"packingapp/internal/pagination"

	"github.com/gin-gonic/gin"
)

// bindJSON binds the JSON body. Returns false and writes a 400 if the body
// cannot be decoded; field rules are checked by the services.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return true
}

// intParam reads a positive integer path parameter, writing a 400 otherwise.
func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return id, true
}

// pageParams reads ?page and ?page_size, clamped to the configured limits.
func pageParams(c *gin.Context, cfg pagination.Config) pagination.Request {
	return pagination.FromQuery(c.Request.URL.Query(), cfg)
}

// fail hands err to middleware.ErrorHandler.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}

// found writes v, or a 404 with msg when v is nil.
func found[T any](c *gin.Context, v *T, msg string) {
	if v == nil {
		c.JSON(http.StatusNotFound, apierror.New(msg))
		return
	}
	c.JSON(http.StatusOK, v)
}

// deleted writes 204, or a 404 with msg when nothing was removed.
func deleted(c *gin.Context, ok bool, msg string) {
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New(msg))
		return
	}
	c.Status(http.StatusNoContent)
}

// claimsFrom returns the verified token claims, nil when auth is disabled.
func claimsFrom(c *gin.Context) *middleware.JWTClaims { return middleware.GetClaims(c) }
