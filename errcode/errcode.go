package errcode

import "fmt"

type Err struct {
	Code int
	Msg  string
}

func (e *Err) Error() string {
	return fmt.Sprintf("code: %d, msg: %s", e.Code, e.Msg)
}

func NewErr(code int, msg string) *Err {
	return &Err{Code: code, Msg: msg}
}

var (
	ErrUnexpected = NewErr(500, "server internal error")
	ErrParam      = NewErr(400, "param error")
)

// NewCustomErr 自定义错误
func NewCustomErr(msg string) *Err {
	return NewErr(ErrUnexpected.Code, msg)
}
