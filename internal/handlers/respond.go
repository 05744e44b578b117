package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/justsurfingit/job-mailer/internal/apperrors"
	"github.com/justsurfingit/job-mailer/internal/dtos"
	"github.com/justsurfingit/job-mailer/internal/logger"
)

var registerJSONNames sync.Once

// useJSONFieldNames makes validation errors report the JSON field name.
func useJSONFieldNames() {
	registerJSONNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindError classifies a ShouldBind failure.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return apperrors.Request("required field missing: " + fe.Field())
		}
		return apperrors.Request("invalid field: " + fe.Field())
	}
	return apperrors.Request("invalid request body")
}

// respondError logs the full diagnostic and answers with the public message only.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	log := logger.FromContext(c.Request.Context())
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "path", c.FullPath(), "status", status, "error", err)
	} else {
		log.Warn("request rejected", "path", c.FullPath(), "status", status, "error", err)
	}

	c.AbortWithStatusJSON(status, dtos.ErrorResponse{
		Success: false,
		Code:    string(apperrors.KindOf(err)),
		Message: apperrors.PublicMessage(err),
	})
}
