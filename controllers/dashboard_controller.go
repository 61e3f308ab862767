package controllers

import (
	"context"
	"customer-portal/dashboard"
	"customer-portal/libs"
	"customer-portal/models"
	"customer-portal/program"
	"customer-portal/repositories"
	"customer-portal/services"
	"customer-portal/views"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileProvider interface {
	GetByUserID(ctx context.Context, token string) (*models.UserProfile, error)
	Create(ctx context.Context, token string, req models.CreateProfileRequest) (*models.UserProfile, error)
	UpdateAvatar(ctx context.Context, token string, profileID int, avatarURL string) error
}

type OrderSummaryProvider interface {
	GetSummary(ctx context.Context, token string) ([]models.Order, error)
}

type AvatarUploader interface {
	UploadAvatar(ctx context.Context, userID int, file io.Reader, filename string) (string, error)
}

type SupportMailer interface {
	SendSupportMessage(msg services.SupportMessage) error
}

type DashboardController struct {
	profiles      ProfileProvider
	orders        OrderSummaryProvider
	uploader      AvatarUploader
	mailer        SupportMailer
	states        repositories.ViewStateRepository
	zone          *time.Location
	maxUploadSize int64
	logger        *zap.Logger
}

type DashboardOptions struct {
	Profiles      ProfileProvider
	Orders        OrderSummaryProvider
	Uploader      AvatarUploader
	Mailer        SupportMailer
	States        repositories.ViewStateRepository
	Zone          *time.Location
	MaxUploadSize int64
	Logger        *zap.Logger
}

func NewDashboardController(opts DashboardOptions) *DashboardController {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	zone := opts.Zone
	if zone == nil {
		zone = time.Local
	}
	return &DashboardController{
		profiles:      opts.Profiles,
		orders:        opts.Orders,
		uploader:      opts.Uploader,
		mailer:        opts.Mailer,
		states:        opts.States,
		zone:          zone,
		maxUploadSize: opts.MaxUploadSize,
		logger:        logger.Named("customer_dashboard"),
	}
}

// @Summary Customer dashboard
// @Description Loads the current profile and the orders summary. A customer without a profile gets the onboarding form
// @Tags Dashboard
// @Security BearerAuth
// @Produce json,html
// @Success 200 {object} models.Response{data=dashboard.Page}
// @Failure 401 {object} models.ErrorResponse
// @Router /dashboard/customer [get]
func (ctrl *DashboardController) Mount(c *gin.Context) {
	cu, ok := currentCustomer(c)
	if !ok {
		return
	}

	s, cmds := dashboard.Init()
	s = ctrl.run(c.Request.Context(), cu, s, cmds)
	ctrl.saveAndRender(c, cu, s, "Dashboard loaded")
}

// @Summary Create customer profile
// @Description Submits the onboarding profile form and reloads the profile
// @Tags Dashboard
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json,html
// @Param first_name formData string true "First name"
// @Param last_name formData string true "Last name"
// @Param dob formData string false "Date of birth (YYYY-MM-DD)"
// @Param phone_number formData string false "Phone number"
// @Param description formData string false "About"
// @Success 200 {object} models.Response{data=dashboard.Page}
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /dashboard/customer/profile [post]
func (ctrl *DashboardController) CreateProfile(c *gin.Context) {
	cu, ok := currentCustomer(c)
	if !ok {
		return
	}

	var req models.CreateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid profile data", err)
		return
	}

	ctx := c.Request.Context()
	if _, err := ctrl.profiles.Create(ctx, cu.Token, req); err != nil {
		ctrl.logger.Error("create profile failed", zap.Int("user_id", cu.UserID), zap.Error(err))
		respondError(c, http.StatusBadGateway, "Failed to create profile", err)
		return
	}

	s, found, err := ctrl.load(ctx, cu)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load dashboard", err)
		return
	}

	var cmds []dashboard.Command
	if found {
		s, cmds = dashboard.Update(s, dashboard.ProfileRefreshRequested{})
	} else {
		s, cmds = dashboard.Init()
	}
	s = ctrl.run(ctx, cu, s, cmds)
	ctrl.saveAndRender(c, cu, s, "Profile created")
}

// @Summary Update avatar
// @Description Uploads a new avatar and records it on the profile
// @Tags Dashboard
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json,html
// @Param avatar formData file true "Avatar image (jpg, jpeg, png, gif, webp)"
// @Success 200 {object} models.Response{data=dashboard.Page}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /dashboard/customer/avatar [post]
func (ctrl *DashboardController) UpdateAvatar(c *gin.Context) {
	cu, ok := currentCustomer(c)
	if !ok {
		return
	}
	if ctrl.uploader == nil {
		respondError(c, http.StatusServiceUnavailable, "Avatar upload unavailable", libs.ErrUploaderAbsent)
		return
	}

	header, err := c.FormFile("avatar")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Avatar file is required", err)
		return
	}
	if err := libs.ValidateImageFile(header, ctrl.maxUploadSize); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid avatar", err)
		return
	}

	ctx := c.Request.Context()
	s, found, err := ctrl.load(ctx, cu)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load dashboard", err)
		return
	}
	if !found || s.Phase != dashboard.Populated {
		respondError(c, http.StatusNotFound, "Profile not loaded", nil)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read avatar", err)
		return
	}
	defer file.Close()

	avatarURL, err := ctrl.uploader.UploadAvatar(ctx, cu.UserID, file, header.Filename)
	if err != nil {
		ctrl.logger.Error("avatar upload failed", zap.Int("user_id", cu.UserID), zap.Error(err))
		respondError(c, http.StatusBadGateway, "Failed to upload avatar", err)
		return
	}
	if err := ctrl.profiles.UpdateAvatar(ctx, cu.Token, s.User.ID, avatarURL); err != nil {
		ctrl.logger.Error("avatar update failed", zap.Int("profile_id", s.User.ID), zap.Error(err))
		respondError(c, http.StatusBadGateway, "Failed to update avatar", err)
		return
	}

	s, _ = dashboard.Update(s, dashboard.AvatarUpdated{AvatarURL: avatarURL})
	ctrl.saveAndRender(c, cu, s, "Avatar updated")
}

// @Summary Email support
// @Description Sends the email chat panel message to the support mailbox
// @Tags Dashboard
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param subject formData string true "Subject"
// @Param message formData string true "Message"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /dashboard/customer/email [post]
func (ctrl *DashboardController) SendEmail(c *gin.Context) {
	cu, ok := currentCustomer(c)
	if !ok {
		return
	}
	if ctrl.mailer == nil {
		respondError(c, http.StatusServiceUnavailable, "Email is not configured", nil)
		return
	}

	var req models.SupportMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message", err)
		return
	}

	msg := services.SupportMessage{
		CustomerEmail: cu.Email,
		Subject:       req.Subject,
		Body:          req.Message,
	}
	if s, found, err := ctrl.load(c.Request.Context(), cu); err == nil && found {
		msg.CustomerName = s.User.FullName()
		if s.User.Email != "" {
			msg.CustomerEmail = s.User.Email
		}
	}

	if err := ctrl.mailer.SendSupportMessage(msg); err != nil {
		ctrl.logger.Error("support email failed", zap.Int("user_id", cu.UserID), zap.Error(err))
		respondError(c, http.StatusBadGateway, "Failed to send message", err)
		return
	}

	if !wantsJSON(c) {
		c.Redirect(http.StatusSeeOther, "/dashboard/customer")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Message sent",
	})
}

func (ctrl *DashboardController) run(ctx context.Context, cu customer, s dashboard.State, cmds []dashboard.Command) dashboard.State {
	s, _ = program.Run(ctx, s, cmds, dashboard.Update, ctrl.exec(cu))
	return s
}

func (ctrl *DashboardController) exec(cu customer) program.Exec[dashboard.Command, dashboard.Event] {
	return func(ctx context.Context, cmd dashboard.Command) (dashboard.Event, bool) {
		switch cmd.(type) {
		case dashboard.FetchProfile:
			profile, err := ctrl.profiles.GetByUserID(ctx, cu.Token)
			if services.IsNotFound(err) {
				ctrl.logger.Info("no profile for current user", zap.Int("user_id", cu.UserID))
				return dashboard.ProfileFailed{Err: err}, true
			}
			if err != nil {
				ctrl.logger.Warn("failed to get current user", zap.Int("user_id", cu.UserID), zap.Error(err))
				return dashboard.ProfileFailed{Err: err}, true
			}
			ctrl.logger.Debug("current user loaded", zap.Int("profile_id", profile.ID))
			return dashboard.ProfileLoaded{Profile: *profile}, true

		case dashboard.FetchOrderSummary:
			orders, err := ctrl.orders.GetSummary(ctx, cu.Token)
			if err != nil {
				ctrl.logger.Info("failed to get orders summary", zap.Int("user_id", cu.UserID), zap.Error(err))
				return dashboard.SummaryFailed{Err: err}, true
			}
			ctrl.logger.Debug("orders summary loaded", zap.Int("count", len(orders)))
			return dashboard.SummaryLoaded{Orders: orders}, true
		}
		return nil, false
	}
}

func (ctrl *DashboardController) load(ctx context.Context, cu customer) (dashboard.State, bool, error) {
	var s dashboard.State
	found, err := ctrl.states.Load(ctx, cu.UserID, repositories.DashboardView, &s)
	if err != nil {
		ctrl.logger.Error("load view state failed", zap.Int("user_id", cu.UserID), zap.Error(err))
		return s, false, err
	}
	return s, found, nil
}

func (ctrl *DashboardController) saveAndRender(c *gin.Context, cu customer, s dashboard.State, message string) {
	if err := ctrl.states.Save(c.Request.Context(), cu.UserID, repositories.DashboardView, s); err != nil {
		ctrl.logger.Warn("save view state failed", zap.Int("user_id", cu.UserID), zap.Error(err))
	}
	renderPage(c, views.DashboardPage, message, dashboard.View(s, ctrl.zone))
}
