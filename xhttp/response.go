package xhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seallabs/lixi/errcode"
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func OkJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 200, Msg: "ok", Data: data})
}

func Error(c *gin.Context, err error) {
	if e, ok := err.(*errcode.Err); ok {
		c.JSON(http.StatusOK, Response{Code: e.Code, Msg: e.Msg})
		return
	}
	c.JSON(http.StatusOK, Response{Code: errcode.ErrUnexpected.Code, Msg: err.Error()})
}
