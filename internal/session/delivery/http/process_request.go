package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingSessionID = errors.New("session id is required")

// processStartReq binds and validates the start session request body.
func (h *handler) processStartReq(c *gin.Context) (startReq, error) {
	var req startReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAppendSegmentReq binds the segment body and the URI param.
func (h *handler) processAppendSegmentReq(c *gin.Context) (appendSegmentReq, error) {
	var req appendSegmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errMissingSessionID
	}
	return req, nil
}

// processHighlightReq binds the highlight request body.
func (h *handler) processHighlightReq(c *gin.Context) (highlightReq, error) {
	var req highlightReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
