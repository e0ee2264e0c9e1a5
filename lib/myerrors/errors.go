package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type httpError struct {
	httpCode int
	err      error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) Unwrap() error {
	return e.err
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...any) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewPaymentRequiredError(err error) *httpError {
	return newError(http.StatusPaymentRequired, err)
}

func NewNotFoundError(err error) *httpError {
	return newError(http.StatusNotFound, err)
}

func NewConflictError(err error) *httpError {
	return newError(http.StatusConflict, err)
}

func NewUnsupportedMediaTypeError(err error) *httpError {
	return newError(http.StatusUnsupportedMediaType, err)
}

func NewUnprocessableError(err error) *httpError {
	return newError(http.StatusUnprocessableEntity, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func GetHTTPStatus(err error) int {
	var coder httpErrorCoder
	if err != nil && errors.As(err, &coder) {
		return coder.GetHTTPErrorCode()
	}
	return http.StatusInternalServerError
}
