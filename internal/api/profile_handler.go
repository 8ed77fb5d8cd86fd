package api

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName" binding:"required,notblank,max=64"`
}

type NameRequest struct {
	// Length is checked after whitespace is collapsed.
	Text string `json:"text" binding:"required,notblank"`
}

type PhotoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmPhotoRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Profile
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to load profile.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile changes the display name.
// @Router /profile [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.profileService.UpdateDisplayName(c.Request.Context(), userID, req.DisplayName)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update profile.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RequestPhotoUploadURL godoc
// @Summary Get a presigned URL for a new profile photo
// @Description The client PUTs the image to uploadUrl, then confirms objectKey.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PhotoUploadRequest true "Image content type"
// @Success 200 {object} service.PhotoUploadURL
// @Failure 400 {object} gin.H "Not an image"
// @Router /profile/photo/upload-url [post]
func (h *ProfileHandler) RequestPhotoUploadURL(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req PhotoUploadRequest
	if !bindJSON(c, &req) {
		return
	}
	upload, err := h.profileService.RequestPhotoUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		respondWithServiceError(c, err, "Failed to prepare photo upload.")
		return
	}
	c.JSON(http.StatusOK, upload)
}

// ConfirmPhoto godoc
// @Summary Use an uploaded object as the profile photo
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ConfirmPhotoRequest true "Uploaded object key"
// @Success 200 {object} domain.Profile
// @Failure 403 {object} gin.H "Key belongs to someone else"
// @Failure 409 {object} gin.H "Object not uploaded yet"
// @Router /profile/photo [put]
func (h *ProfileHandler) ConfirmPhoto(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req ConfirmPhotoRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.profileService.ConfirmPhoto(c.Request.Context(), userID, req.ObjectKey)
	if err != nil {
		respondWithServiceError(c, err, "Failed to save profile photo.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddName godoc
// @Summary Add a lift or workout name
// @Tags Names
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "lifts or workouts"
// @Param request body NameRequest true "Name text"
// @Success 201 {object} domain.EditableName
// @Failure 409 {object} gin.H "Duplicate name"
// @Router /names/{kind} [post]
func (h *ProfileHandler) AddName(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req NameRequest
	if !bindJSON(c, &req) {
		return
	}
	name, err := h.profileService.AddName(c.Request.Context(), userID, domain.NameKind(c.Param("kind")), req.Text)
	if err != nil {
		respondWithServiceError(c, err, "Failed to add name.")
		return
	}
	c.JSON(http.StatusCreated, name)
}

// RenameName changes the text of an existing name.
// @Router /names/{kind}/{id} [put]
func (h *ProfileHandler) RenameName(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req NameRequest
	if !bindJSON(c, &req) {
		return
	}
	name, err := h.profileService.RenameName(c.Request.Context(), userID, domain.NameKind(c.Param("kind")), c.Param("id"), req.Text)
	if err != nil {
		respondWithServiceError(c, err, "Failed to rename.")
		return
	}
	c.JSON(http.StatusOK, name)
}

// DeleteName removes a name no workout references.
// @Router /names/{kind}/{id} [delete]
func (h *ProfileHandler) DeleteName(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	err := h.profileService.DeleteName(c.Request.Context(), userID, domain.NameKind(c.Param("kind")), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to delete name.")
		return
	}
	c.Status(http.StatusNoContent)
}
