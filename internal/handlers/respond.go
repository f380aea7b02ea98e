package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"showroom_manager/internal/apperrors"
)

// respondError translates a service error into the API's status code and
// message body. The message is shown to the user verbatim; internal causes
// never leave the server.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{"error": apperrors.Message(err)})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
