package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// follows RFC 7807: Problem Details for HTTP APIs
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance,omitempty"`
}

func (pd *ProblemDetails) Error() string {
	return fmt.Sprintf("%d %s: %s", pd.Status, pd.Title, pd.Detail)
}

func WriteError(w http.ResponseWriter, status int, title, detail, instance string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)

	pd := &ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: instance,
	}

	json.NewEncoder(w).Encode(pd)
}

// AbortBadRequest ends the gin request with a 400 problem response.
func AbortBadRequest(c *gin.Context, detail string) {
	c.Abort()
	WriteError(c.Writer, http.StatusBadRequest, "Bad Request", detail, c.Request.URL.Path)
}

// AbortInternalServerError ends the gin request with a 500 problem response.
func AbortInternalServerError(c *gin.Context, err error) {
	c.Abort()
	WriteError(c.Writer, http.StatusInternalServerError, "Internal Server Error", err.Error(), c.Request.URL.Path)
}
