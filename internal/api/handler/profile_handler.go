package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Adi-cmrec/lenslink/internal/api/metrics"
	"github.com/Adi-cmrec/lenslink/internal/core/domain"
	"github.com/Adi-cmrec/lenslink/internal/core/ports"
)

// ProfileHandler handles the authenticated profile routes. The acting user is
// always the token's user_id; there is no way to touch someone else's profile.
type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Create handles POST /profile.
//
// @Summary      Create the photographer profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProfileRequest  true  "Profile fields"
// @Success      201   {object}  createProfileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /profile [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	profileID, err := h.profileService.Create(c.Request().Context(), userID, toCreateInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrProfileExists) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Profile already exists. Use PUT to update."})
		}
		return err
	}

	metrics.ProfilesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createProfileResponse{
		Message:   "Profile created successfully",
		ProfileID: profileID,
	})
}

// Update handles PUT /profile.
//
// @Summary      Update the photographer profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Any subset of profile fields"
// @Success      200   {object}  profileViewResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	view, err := h.profileService.Update(c.Request().Context(), userID, toProfileUpdate(req))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Profile not found. Create one first."})
		}
		return err
	}

	return c.JSON(http.StatusOK, toProfileViewResponse(view))
}

// GetMine handles GET /profile/me.
//
// @Summary      Get the acting user's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileViewResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile/me [get]
func (h *ProfileHandler) GetMine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	view, err := h.profileService.GetMine(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Profile not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toProfileViewResponse(view))
}

// Upload handles POST /profile/upload.
//
// @Summary      Upload work photos
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        files  formData  file  true  "Photo files (at most 5 in total)"
// @Success      200    {object}  uploadResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /profile/upload [post]
func (h *ProfileHandler) Upload(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "no files provided"})
	}

	files := make([]ports.FileUpload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "unreadable file " + fh.Filename})
		}
		defer src.Close()
		files = append(files, ports.FileUpload{Filename: fh.Filename, Content: src})
	}

	urls, err := h.profileService.UploadPhotos(c.Request().Context(), userID, files)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Profile not found"})
		}
		if errors.Is(err, domain.ErrPhotoLimitExceeded) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.PhotosUploadedTotal.Add(float64(len(urls)))
	return c.JSON(http.StatusOK, uploadResponse{
		Message:  "Images uploaded successfully",
		FileURLs: urls,
	})
}
