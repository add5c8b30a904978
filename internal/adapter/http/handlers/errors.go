package handlers

import (
	"errors"
	"net/http"
	"strings"

	"assistencia_tecnica/internal/domain/dataerr"
	"assistencia_tecnica/internal/usecase"
	"assistencia_tecnica/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida.", http.StatusBadRequest)
	errAdminOnly      = pkg.NewDomainErrorSimple("FORBIDDEN", "Acesso restrito a administradores.", http.StatusForbidden)
	errNotFound       = pkg.NewDomainErrorSimple("NOT_FOUND", dataerr.Message(dataerr.KindNotFound), http.StatusNotFound)
)

var kindStatus = map[dataerr.Kind]int{
	dataerr.KindValidation:         http.StatusBadRequest,
	dataerr.KindOutOfRange:         http.StatusBadRequest,
	dataerr.KindUnauthenticated:    http.StatusUnauthorized,
	dataerr.KindNotFound:           http.StatusNotFound,
	dataerr.KindAlreadyExists:      http.StatusConflict,
	dataerr.KindAborted:            http.StatusConflict,
	dataerr.KindFailedPrecondition: http.StatusPreconditionFailed,
	dataerr.KindUnimplemented:      http.StatusNotImplemented,
	dataerr.KindUnavailable:        http.StatusServiceUnavailable,
	dataerr.KindDeadlineExceeded:   http.StatusGatewayTimeout,
}

// mapDataError turns data-layer errors into the HTTP envelope. The
// pt-BR message of a *dataerr.Error is what the user sees.
func mapDataError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrAdminOnly) {
		return errAdminOnly
	}
	var de *dataerr.Error
	if errors.As(err, &de) {
		status, ok := kindStatus[de.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		return pkg.NewDomainError(errorCode(de.Kind), de.Error(), err, status)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno.", err, http.StatusInternalServerError)
}

// errorCode renders a kind as an upper snake case code, e.g.
// "deadline-exceeded" becomes "DEADLINE_EXCEEDED".
func errorCode(k dataerr.Kind) string {
	return strings.ToUpper(strings.ReplaceAll(string(k), "-", "_"))
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
