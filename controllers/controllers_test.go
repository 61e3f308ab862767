package controllers

import (
	"context"
	"customer-portal/middleware"
	"customer-portal/models"
	"customer-portal/orderlist"
	"customer-portal/repositories"
	"customer-portal/services"
	"customer-portal/utils"
	"customer-portal/views"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testUserID = 42
)

type fakeProfiles struct {
	mu        sync.Mutex
	profile   *models.UserProfile
	err       error
	calls     int
	created   []models.CreateProfileRequest
	avatarFor int
	avatarURL string
}

func (f *fakeProfiles) GetByUserID(_ context.Context, token string) (*models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeProfiles) Create(_ context.Context, _ string, req models.CreateProfileRequest) (*models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	f.profile = &models.UserProfile{ID: 5, UserID: testUserID, FirstName: req.FirstName, LastName: req.LastName}
	f.err = nil
	return f.profile, nil
}

func (f *fakeProfiles) UpdateAvatar(_ context.Context, _ string, profileID int, avatarURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.avatarFor = profileID
	f.avatarURL = avatarURL
	return nil
}

type fakeOrders struct {
	mu      sync.Mutex
	summary []models.Order
	pages   func(q orderlist.Query) ([]models.Order, error)
	queries []orderlist.Query
}

func (f *fakeOrders) GetSummary(context.Context, string) ([]models.Order, error) {
	if f.summary == nil {
		return nil, errors.New("summary unavailable")
	}
	return f.summary, nil
}

func (f *fakeOrders) Fetch(_ context.Context, _ string, q orderlist.Query) ([]models.Order, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	if f.pages == nil {
		return nil, errors.New("orders unavailable")
	}
	return f.pages(q)
}

func (f *fakeOrders) lastQuery(t *testing.T) orderlist.Query {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.queries)
	return f.queries[len(f.queries)-1]
}

func (f *fakeOrders) fetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

// countingStates records how often view state is written.
type countingStates struct {
	repositories.ViewStateRepository
	mu    sync.Mutex
	saves int
}

func (r *countingStates) Save(ctx context.Context, userID int, view string, state any) error {
	r.mu.Lock()
	r.saves++
	r.mu.Unlock()
	return r.ViewStateRepository.Save(ctx, userID, view, state)
}

func (r *countingStates) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

type fakeUploader struct{ url string }

func (f fakeUploader) UploadAvatar(_ context.Context, _ int, file io.Reader, _ string) (string, error) {
	if _, err := io.ReadAll(file); err != nil {
		return "", err
	}
	return f.url, nil
}

type fakeMailer struct{ sent []services.SupportMessage }

func (f *fakeMailer) SendSupportMessage(msg services.SupportMessage) error {
	f.sent = append(f.sent, msg)
	return nil
}

// ordersPage returns n orders whose first item carries totalCount.
func ordersPage(n, totalCount int) []models.Order {
	orders := make([]models.Order, n)
	for i := range orders {
		orders[i] = models.Order{
			ID:             i + 1,
			DateCreated:    time.Date(2020, 3, 5, 12, 0, 0, 0, time.UTC),
			Total:          10,
			Quantity:       1,
			TrackingNumber: "TRK",
			Status:         "Completed",
			TotalCount:     totalCount,
		}
	}
	return orders
}

type testApp struct {
	router   *gin.Engine
	token    string
	states   *repositories.MemoryViewStateRepository
	writes   *countingStates
	profiles *fakeProfiles
	orders   *fakeOrders
	mailer   *fakeMailer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	token, err := utils.GenerateToken(testSecret, testUserID, "ana@example.com", "customer", time.Hour)
	require.NoError(t, err)

	app := &testApp{
		token:    token,
		states:   repositories.NewMemoryViewStateRepository(time.Hour),
		profiles: &fakeProfiles{profile: &models.UserProfile{ID: 5, UserID: testUserID, FirstName: "Ana", LastName: "Lee", AvatarURL: "https://img/ana.png", Email: "ana@example.com"}},
		orders:   &fakeOrders{summary: ordersPage(2, 2)},
		mailer:   &fakeMailer{},
	}

	app.writes = &countingStates{ViewStateRepository: app.states}

	dash := NewDashboardController(DashboardOptions{
		Profiles:      app.profiles,
		Orders:        app.orders,
		Uploader:      fakeUploader{url: "https://img/new.png"},
		Mailer:        app.mailer,
		States:        app.states,
		Zone:          time.UTC,
		MaxUploadSize: 1 << 20,
	})
	list := NewOrdersController(app.orders, app.writes, sessions.NewCookieStore([]byte("session-secret")), orderlist.New(time.UTC), nil)

	r := gin.New()
	r.HTMLRender = renderer
	auth := r.Group("/", middleware.AuthMiddleware(testSecret))
	auth.GET("/dashboard/customer", dash.Mount)
	auth.POST("/dashboard/customer/profile", dash.CreateProfile)
	auth.POST("/dashboard/customer/avatar", dash.UpdateAvatar)
	auth.POST("/dashboard/customer/email", dash.SendEmail)
	auth.GET("/orders", list.Mount)
	auth.POST("/orders/pagination/:direction", list.Paginate)
	auth.POST("/orders/calendar/toggle", list.ToggleCalendar)
	auth.POST("/orders/calendar/dates", list.ChangeDates)
	auth.POST("/orders/calendar/close", list.CloseCalendar)
	auth.GET("/orders/:id/open", list.OpenOrder)
	auth.GET("/orders/redo-search", list.RedoSearch)

	app.router = r
	return app
}

func (a *testApp) do(method, target string, body io.Reader, contentType string, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+a.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) getJSON(target string) *httptest.ResponseRecorder {
	return a.do(http.MethodGet, target, nil, "", gin.MIMEJSON)
}

func (a *testApp) postForm(target, form string) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, target, strings.NewReader(form), "application/x-www-form-urlencoded", gin.MIMEJSON)
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	require.True(t, env.Success, w.Body.String())
	return env.Data
}
