package api

import (
	"alcyxob/workout-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DraftHandler serves the single in-progress workout each user may keep.
type DraftHandler struct {
	draftService service.DraftService
}

func NewDraftHandler(draftService service.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// GetDraft godoc
// @Summary Get the workout in progress
// @Tags Draft
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.WorkoutDraft
// @Failure 404 {object} gin.H "No workout in progress"
// @Router /draft [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	draft, err := h.draftService.GetDraft(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to load workout in progress.")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SaveDraft godoc
// @Summary Replace the workout in progress
// @Description Numeric fields may be numbers or strings; invalid values become 0.
// @Tags Draft
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draft body service.DraftInput true "Draft"
// @Success 200 {object} domain.WorkoutDraft
// @Router /draft [put]
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.DraftInput
	if !bindJSON(c, &req) {
		return
	}
	draft, err := h.draftService.SaveDraft(c.Request.Context(), userID, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to save workout in progress.")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ClearDraft discards the workout in progress.
// @Router /draft [delete]
func (h *DraftHandler) ClearDraft(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.draftService.ClearDraft(c.Request.Context(), userID); err != nil {
		respondWithServiceError(c, err, "Failed to discard workout in progress.")
		return
	}
	c.Status(http.StatusNoContent)
}

// CommitDraft godoc
// @Summary Save the workout in progress as a workout
// @Tags Draft
// @Produce json
// @Security BearerAuth
// @Success 201 {object} domain.Workout
// @Failure 400 {object} gin.H "Draft is not a valid workout yet"
// @Failure 404 {object} gin.H "No workout in progress"
// @Router /draft/commit [post]
func (h *DraftHandler) CommitDraft(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workout, err := h.draftService.CommitDraft(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to save workout.")
		return
	}
	c.JSON(http.StatusCreated, workout)
}
