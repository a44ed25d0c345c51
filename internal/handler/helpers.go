package handler

import (
	"errors"
	"net/http"
	"reflect"

	"banaapro/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps the service error taxonomy to HTTP statuses:
// validation → 422, not found → 404, persistence/fetch → 500.
func respondError(c *gin.Context, err error) {
	var vErr *apierror.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusUnprocessableEntity, vErr)
		return
	}
	var nfErr *apierror.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, apierror.New(nfErr.Error()))
		return
	}
	var pErr *apierror.PersistenceError
	if errors.As(err, &pErr) {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Could not save changes"))
		return
	}
	var fErr *apierror.FetchError
	if errors.As(err, &fErr) {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Could not load data"))
		return
	}
	c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
}
