package controllers

import (
	"customer-portal/middleware"
	"customer-portal/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

type customer struct {
	UserID int
	Email  string
	Token  string
}

func currentCustomer(c *gin.Context) (customer, bool) {
	cu := customer{
		UserID: c.GetInt(middleware.UserIDKey),
		Email:  c.GetString(middleware.UserEmailKey),
		Token:  c.GetString(middleware.AccessTokenKey),
	}
	if cu.UserID == 0 {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: "Unauthorized",
		})
		return cu, false
	}
	return cu, true
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// renderPage serves the page template to browsers and the view model to
// JSON clients.
func renderPage(c *gin.Context, page, message string, data any) {
	c.Negotiate(http.StatusOK, gin.Negotiate{
		Offered:  []string{gin.MIMEHTML, gin.MIMEJSON},
		HTMLName: page,
		HTMLData: data,
		JSONData: models.Response{
			Success: true,
			Message: message,
			Data:    data,
		},
	})
}

func redirectTo(c *gin.Context, path string, state any) {
	if wantsJSON(c) {
		c.JSON(http.StatusOK, models.RedirectResponse{
			Success:  true,
			Redirect: path,
			State:    state,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, path)
}

func respondError(c *gin.Context, status int, message string, err error) {
	resp := models.ErrorResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}
