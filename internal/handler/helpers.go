package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/PrManiezzo/marmo/internal/apierror"
	"github.com/PrManiezzo/marmo/internal/service"
	"github.com/PrManiezzo/marmo/internal/validacao"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// decimal.Decimal validates as a float so min=0, gt=0 and required work.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	registrarFormato("cpf", validacao.CPF)
	registrarFormato("telefone", validacao.Telefone)
	registrarFormato("cep", validacao.CEP)
	registrarFormato("uf", validacao.UF)
}

func registrarFormato(tag string, fn func(string) bool) {
	if err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false after writing the error response; the caller must return.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	return validar(c, req)
}

// bindQuery is bindAndValidate for query strings.
func bindQuery(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parâmetros inválidos: "+err.Error()))
		return false
	}
	return validar(c, filter)
}

func validar(c *gin.Context, v interface{}) bool {
	err := validate.Struct(v)
	if err == nil {
		return true
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return false
	}
	fields := make(map[string]string, len(ves))
	for _, fe := range ves {
		fields[fe.Field()] = fe.Tag()
	}
	c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
	return false
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// responderErro maps service sentinels onto HTTP status codes.
// Persistence failures never leak the driver message.
func responderErro(c *gin.Context, err error) {
	status := statusDoErro(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = service.ErrPersistencia.Error()
	}
	c.JSON(status, apierror.New(msg))
}

func statusDoErro(err error) int {
	switch {
	case errors.Is(err, service.ErrNaoEncontrado):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicado),
		errors.Is(err, service.ErrEstoqueJaGerado),
		errors.Is(err, service.ErrEstoqueInsuficiente),
		errors.Is(err, service.ErrOrcamentoNaoAprovado):
		return http.StatusConflict
	case errors.Is(err, service.ErrPeriodoInvalido):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTransacaoInvalida),
		errors.Is(err, service.ErrQuantidadeInvalida),
		errors.Is(err, service.ErrDimensoesInvalidas),
		errors.Is(err, service.ErrDadosInvalidos):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
