// Package controllers handles HTTP request handling
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaan/examportal/internal/app/models/dto"
)

// parseIDParam reads a numeric path parameter, answering 400 with the
// parameter's name when it is missing or not a number. The bool reports
// whether the request may proceed.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(fmt.Sprintf("%s must be a valid number", name)))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body, answering 400 with field-keyed errors on
// failure. The bool reports whether the request may proceed.
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.FieldErrorsFromBinding(err)))
		return false
	}
	return true
}
