package api

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/helpers"
	"alcyxob/workout-tracker/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

type ExerciseRequest struct {
	LiftID  string  `json:"liftId" binding:"required"`
	Sets    int     `json:"sets" binding:"gte=0"`
	Reps    int     `json:"reps" binding:"gte=0"`
	Weight  float64 `json:"weight" binding:"gte=0"`
	PRStart string  `json:"prStart"`
	PREnd   string  `json:"prEnd"`
}

// Dates are either a calendar date (2006-01-02) or an RFC 3339 timestamp.
type WorkoutRequest struct {
	Date          string            `json:"date" binding:"required"`
	WorkoutNameID string            `json:"workoutNameId" binding:"required"`
	Exercises     []ExerciseRequest `json:"exercises" binding:"max=100,dive"`
}

// toInput parses the dates. Failures are keyed by field path.
func (r WorkoutRequest) toInput() (service.WorkoutInput, map[string]string) {
	details := map[string]string{}
	date, err := helpers.ParseDate(r.Date)
	if err != nil {
		details["date"] = err.Error()
	}
	exercises := make([]domain.Exercise, len(r.Exercises))
	for i, ex := range r.Exercises {
		exercises[i] = domain.Exercise{
			LiftID:  ex.LiftID,
			Sets:    ex.Sets,
			Reps:    ex.Reps,
			Weight:  ex.Weight,
			PRStart: optionalDate(ex.PRStart, fmt.Sprintf("exercises[%d].prStart", i), details),
			PREnd:   optionalDate(ex.PREnd, fmt.Sprintf("exercises[%d].prEnd", i), details),
		}
	}
	if len(details) > 0 {
		return service.WorkoutInput{}, details
	}
	return service.WorkoutInput{Date: date, WorkoutNameID: r.WorkoutNameID, Exercises: exercises}, nil
}

func optionalDate(raw, field string, details map[string]string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := helpers.ParseDate(raw)
	if err != nil {
		details[field] = err.Error()
		return nil
	}
	return &t
}

// --- Handler Methods ---

// ListWorkouts godoc
// @Summary List the caller's workouts, newest first
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Workout
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve workouts.")
		return
	}
	if workouts == nil {
		c.JSON(http.StatusOK, []domain.Workout{}) // Return empty JSON array, not null
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout godoc
// @Summary Get one workout
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout ID"
// @Success 200 {object} domain.Workout
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{workoutId} [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workoutID, ok := workoutIDParam(c)
	if !ok {
		return
	}
	workout, err := h.workoutService.GetWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve workout.")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CreateWorkout godoc
// @Summary Record a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body WorkoutRequest true "Workout"
// @Success 201 {object} domain.Workout
// @Failure 400 {object} gin.H "Invalid input or unknown name reference"
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	input, ok := bindWorkout(c)
	if !ok {
		return
	}
	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), userID, input)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create workout.")
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// UpdateWorkout replaces a workout's date, name and exercises.
// @Router /workouts/{workoutId} [put]
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workoutID, ok := workoutIDParam(c)
	if !ok {
		return
	}
	input, ok := bindWorkout(c)
	if !ok {
		return
	}
	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), userID, workoutID, input)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update workout.")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout removes a workout.
// @Router /workouts/{workoutId} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workoutID, ok := workoutIDParam(c)
	if !ok {
		return
	}
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		respondWithServiceError(c, err, "Failed to delete workout.")
		return
	}
	c.Status(http.StatusNoContent)
}

func workoutIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	workoutID, err := primitive.ObjectIDFromHex(c.Param("workoutId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format in URL path.")
		return primitive.NilObjectID, false
	}
	return workoutID, true
}

func bindWorkout(c *gin.Context) (service.WorkoutInput, bool) {
	var req WorkoutRequest
	if !bindJSON(c, &req) {
		return service.WorkoutInput{}, false
	}
	input, details := req.toInput()
	if details != nil {
		abortWithDetails(c, http.StatusBadRequest, "Invalid request payload", details)
		return service.WorkoutInput{}, false
	}
	return input, true
}
