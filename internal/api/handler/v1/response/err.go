package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON error envelope every handler renders on failure.
type Err struct {
	StatusCode int    `json:"status_code"`
	Msg        string `json:"msg"`

	err error
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
		err:        err,
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
		err:        err,
	}
}

func ErrNotFound(err error) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        err.Error(),
		err:        err,
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Msg:        err.Error(),
		err:        err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "internal server error",
		err:        err,
	}
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.StatusCode == http.StatusInternalServerError {
		zap.L().Error("internal server error", zap.Error(e.err))
	}

	ctx.JSON(e.StatusCode, e)
}

// AbortWithErr is RenderErr for middlewares, stopping the chain.
func AbortWithErr(ctx *gin.Context, e *Err) {
	RenderErr(ctx, e)
	ctx.Abort()
}
