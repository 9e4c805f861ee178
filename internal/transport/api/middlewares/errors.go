package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var statusErrorTexts = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusPaymentRequired:     "insufficient funds",
	http.StatusForbidden:           "forbidden",
	http.StatusNotFound:            "not found",
	http.StatusConflict:            "conflict",
	http.StatusUnprocessableEntity: "unprocessable entity",
}

func statusErrorText(status int) string {
	if text, ok := statusErrorTexts[status]; ok {
		return text
	}
	return "internal server error"
}

// Errors рендерит накопленные в контексте ошибки. Наружу уходит текст только
// публичных ошибок, остальные заменяются текстом статуса. API отвечает JSON,
// text/plain отдается только по явному Accept.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		msg := statusErrorText(c.Writer.Status())
		if firstErr.IsType(gin.ErrorTypePublic) {
			msg = firstErr.Error()
		}

		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(c.Writer.Status(), msg)
		} else {
			c.JSON(c.Writer.Status(), gin.H{"error": msg})
		}
		c.Abort()
	}
}
