package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gitlab.com/finbridge/finbridge/internal/models"
	"gitlab.com/finbridge/finbridge/internal/store"
)

// StudentHandler serves the student profile and the fee balance derived
// from it.
type StudentHandler struct {
	store *store.Store
}

// NewStudentHandler creates a StudentHandler.
func NewStudentHandler(s *store.Store) *StudentHandler {
	return &StudentHandler{store: s}
}

// StudentRequest is the payload for PUT /api/student.
type StudentRequest struct {
	Year       string `json:"year" binding:"required"`
	Department string `json:"department" binding:"required"`
	RollNumber string `json:"rollNumber" binding:"required,max=50"`
}

// Set stores the active student profile for the account.
func (h *StudentHandler) Set(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	student := &models.Student{
		Year:       req.Year,
		Department: req.Department,
		RollNumber: req.RollNumber,
	}
	if err := h.store.SetStudent(c.Request.Context(), CurrentEmail(c), student); err != nil {
		BadRequest(c, err.Error())
		return
	}
	Success(c, student)
}

// Get returns the active student profile, or null when none is set.
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.store.Student(c.Request.Context(), CurrentEmail(c))
	if err != nil {
		InternalError(c, "failed to load student profile")
		return
	}
	Success(c, student)
}

// Clear removes the active student profile.
func (h *StudentHandler) Clear(c *gin.Context) {
	if err := h.store.SetStudent(c.Request.Context(), CurrentEmail(c), nil); err != nil {
		InternalError(c, "failed to clear student profile")
		return
	}
	Success(c, nil)
}

// Balance returns the fee total, total paid, and outstanding balance for the
// active student profile.
func (h *StudentHandler) Balance(c *gin.Context) {
	balance, err := h.store.FeeBalance(c.Request.Context(), CurrentEmail(c))
	if errors.Is(err, store.ErrNoStudent) {
		NotFound(c, err.Error())
		return
	}
	if err != nil {
		InternalError(c, "failed to compute balance")
		return
	}
	Success(c, balance)
}
