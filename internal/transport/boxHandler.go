package transport

import (
	"net/http"
	"strconv"

	"github.com/bookmybox/backend/internal/service"
	"github.com/bookmybox/backend/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

type BoxHandler struct {
	boxService service.BoxService
}

func NewBoxHandler(boxService service.BoxService) *BoxHandler {
	return &BoxHandler{boxService: boxService}
}

func (h *BoxHandler) CreateBox(c *gin.Context) {
	var req service.CreateBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}
	req.OwnerID = middleware.UserID(c)

	box, err := h.boxService.CreateBox(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, box)
}

func (h *BoxHandler) GetBox(c *gin.Context) {
	boxID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid box id"})
		return
	}

	box, err := h.boxService.GetBox(c.Request.Context(), boxID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, box)
}

// ListBoxes returns approved boxes only; the public catalog
func (h *BoxHandler) ListBoxes(c *gin.Context) {
	boxes, err := h.boxService.GetApprovedBoxes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, boxes)
}

func (h *BoxHandler) OwnerBoxes(c *gin.Context) {
	boxes, err := h.boxService.GetOwnerBoxes(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, boxes)
}

// ApproveBox переводит бокс из pending в approved (admin)
func (h *BoxHandler) ApproveBox(c *gin.Context) {
	boxID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid box id"})
		return
	}

	if err := h.boxService.ApproveBox(c.Request.Context(), boxID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Box approved successfully",
	})
}

type rejectBoxBody struct {
	Reason string `json:"reason" binding:"required,min=1,max=1000"`
}

// RejectBox переводит бокс из pending в rejected с указанием причины (admin)
func (h *BoxHandler) RejectBox(c *gin.Context) {
	boxID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid box id"})
		return
	}

	var body rejectBoxBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadBody(c, err)
		return
	}

	if err := h.boxService.RejectBox(c.Request.Context(), boxID, body.Reason); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Box rejected",
	})
}

func (h *BoxHandler) AddReview(c *gin.Context) {
	boxID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid box id"})
		return
	}

	var req service.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}
	req.BoxID = boxID
	req.UserID = middleware.UserID(c)

	review, err := h.boxService.AddReview(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *BoxHandler) GetReviews(c *gin.Context) {
	boxID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid box id"})
		return
	}

	reviews, err := h.boxService.GetBoxReviews(c.Request.Context(), boxID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}
