package errno

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

const (
	SuccessCode            = 0
	ServiceErrCode         = 10001
	ParamErrCode           = 10002
	AuthorizationFailCode  = 10003
	RecordNotFoundCode     = 10004
	RecordAlreadyExistCode = 10005
	MethodNotAllowedCode   = 10006
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success              = NewErrNo(SuccessCode, "Success")
	ServiceErr           = NewErrNo(ServiceErrCode, "Internal server error")
	ParamErr             = NewErrNo(ParamErrCode, "Wrong parameter has been given")
	AuthorizationFailErr = NewErrNo(AuthorizationFailCode, "Invalid credentials")
	RecordNotFoundErr    = NewErrNo(RecordNotFoundCode, "Record not found")
	RecordAlreadyExist   = NewErrNo(RecordAlreadyExistCode, "Record already exists")
	MethodNotAllowedErr  = NewErrNo(MethodNotAllowedCode, "Method not allowed")
)

// HTTPStatus maps the taxonomy onto response status codes.
func (e ErrNo) HTTPStatus() int {
	switch e.ErrCode {
	case SuccessCode:
		return http.StatusOK
	case ParamErrCode:
		return http.StatusBadRequest
	case AuthorizationFailCode:
		return http.StatusUnauthorized
	case RecordNotFoundCode:
		return http.StatusNotFound
	case RecordAlreadyExistCode:
		return http.StatusConflict
	case MethodNotAllowedCode:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// ConvertErr maps any error onto the taxonomy. Unknown errors collapse into
// ServiceErr with a generic message so internal detail never reaches the client.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return RecordNotFoundErr
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return RecordAlreadyExist
	}
	return ServiceErr
}
