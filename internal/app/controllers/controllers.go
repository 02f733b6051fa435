// Package controllers contains the HTTP handlers for the school records API.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kerem/schoolhub/internal/app/models/dto"
)

// parseIDParam reads a positive int64 path parameter, writing a 400
// response and returning ok=false when it is malformed.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails(name + " must be a positive integer")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
