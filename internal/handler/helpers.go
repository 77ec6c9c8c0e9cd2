package handler

import (
	"errors"
	"net/http"
	"reflect"

	"licitasis/internal/apierror"
	"licitasis/internal/cnpj"
	"licitasis/internal/middleware"
	"licitasis/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
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

	// "cnpj" tag — check-digit validation, accepts masked or bare input.
	_ = validate.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return cnpj.Valido(cnpj.Normalizar(fl.Field().String()))
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

// validateStruct runs the validator tags on an already-populated request.
// Used directly by the multipart handlers that assemble the DTO by hand.
func validateStruct(c *gin.Context, req interface{}) bool {
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

// respondError maps a service error to its HTTP status. Infrastructure causes
// are logged server-side and never leak to the client.
func respondError(c *gin.Context, err error) {
	status := apierror.StatusFor(err)
	var de *apierror.DomainError
	if errors.As(err, &de) {
		if de.Kind == apierror.KindInfra && de.Err != nil {
			log.Error().
				Str("request_id", c.GetString(middleware.RequestIDKey)).
				Str("path", c.FullPath()).
				Err(de.Err).
				Msg("infrastructure error")
		}
		c.JSON(status, apierror.New(de.Msg))
		return
	}
	c.JSON(status, apierror.New("Erro interno ao processar a solicitação"))
}

// actorFrom builds the audit actor from the validated JWT claims.
func actorFrom(c *gin.Context) service.Actor {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return service.Actor{}
	}
	id, _ := uuid.Parse(claims.UserID)
	return service.Actor{ID: id, Nome: claims.Nome}
}

// parseIDParam parses the :id path segment, answering 400 on garbage.
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}
