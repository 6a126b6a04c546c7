package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/question-board/internal/domain/question"
	apperrors "github.com/yanqian/question-board/pkg/errors"
)

// rangeErrorCodes are checked in this fixed order before any fallback; each
// maps a pagination failure onto 416 Range Not Satisfiable.
var rangeErrorCodes = []string{
	question.CodeParseError,
	question.CodeMissingParameter,
	question.CodeStartGreaterEnd,
}

func statusFor(err error) int {
	for _, code := range rangeErrorCodes {
		if apperrors.IsCode(err, code) {
			return http.StatusRequestedRangeNotSatisfiable
		}
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
