package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DownloadInvoice renders the GST bill for an order and streams it as a file
// attachment. The document is rebuilt on every request; nothing is cached.
func (s *Server) DownloadInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	export, err := s.billSvc.Export(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", export.PDF)
}
