package dashboard

import (
	"customer-portal/models"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	s, cmds := Init()
	assert.Equal(t, Loading, s.Phase)
	assert.Equal(t, CustomerRole, s.Role)
	assert.True(t, s.Photo)
	assert.Empty(t, s.Orders)
	assert.Equal(t, []Command{FetchProfile{}, FetchOrderSummary{}}, cmds)
}

func TestProfileFailedShowsOnboarding(t *testing.T) {
	s, _ := Init()
	s, cmds := Update(s, ProfileFailed{Err: errors.New("404")})
	assert.Empty(t, cmds)
	assert.Equal(t, Onboarding, s.Phase)
	assert.Equal(t, "onboarding", View(s, time.UTC).Phase)
}

func TestProfileLoadedShowsDashboard(t *testing.T) {
	s, _ := Init()
	profile := models.UserProfile{ID: 3, UserID: 9, FirstName: "Ana", LastName: "Diaz", AvatarURL: "https://img/a.png"}

	s, _ = Update(s, ProfileLoaded{Profile: profile})
	assert.Equal(t, Populated, s.Phase)
	assert.Equal(t, profile, s.User)
	assert.True(t, s.Photo)
}

func TestProfileWithoutAvatarHidesPhoto(t *testing.T) {
	s, _ := Init()
	s, _ = Update(s, ProfileLoaded{Profile: models.UserProfile{ID: 3}})
	assert.False(t, s.Photo)
}

func TestSummaryDoesNotChangePhase(t *testing.T) {
	s, _ := Init()
	orders := []models.Order{{ID: 1, Status: "Completed"}}

	s, _ = Update(s, SummaryLoaded{Orders: orders})
	assert.Equal(t, Loading, s.Phase)
	assert.True(t, s.OrderSummaryExists)
	assert.Equal(t, orders, s.Orders)

	s2, _ := Init()
	s2, cmds := Update(s2, SummaryFailed{Err: errors.New("timeout")})
	assert.Empty(t, cmds)
	assert.Empty(t, s2.Orders)
	assert.False(t, s2.OrderSummaryExists)
}

func TestEventsInEitherOrder(t *testing.T) {
	profile := models.UserProfile{ID: 3, AvatarURL: "x"}
	orders := []models.Order{{ID: 1}}

	a, _ := Init()
	a, _ = Update(a, ProfileLoaded{Profile: profile})
	a, _ = Update(a, SummaryLoaded{Orders: orders})

	b, _ := Init()
	b, _ = Update(b, SummaryLoaded{Orders: orders})
	b, _ = Update(b, ProfileLoaded{Profile: profile})

	assert.Equal(t, a, b)
}

func TestAvatarUpdatedMergesLocally(t *testing.T) {
	s, _ := Init()
	s, _ = Update(s, ProfileLoaded{Profile: models.UserProfile{ID: 3, FirstName: "Ana", AvatarURL: "old"}})

	next, cmds := Update(s, AvatarUpdated{AvatarURL: "new"})
	assert.Empty(t, cmds)
	assert.Equal(t, "new", next.User.AvatarURL)
	assert.Equal(t, "Ana", next.User.FirstName)
	assert.Equal(t, "old", s.User.AvatarURL)
}

func TestProfileRefreshRequested(t *testing.T) {
	s, _ := Init()
	s, _ = Update(s, ProfileFailed{})
	_, cmds := Update(s, ProfileRefreshRequested{})
	assert.Equal(t, []Command{FetchProfile{}}, cmds)
}

func TestStateRoundTripsPhase(t *testing.T) {
	s, _ := Init()
	s, _ = Update(s, ProfileLoaded{Profile: models.UserProfile{ID: 3}})

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"phase":"populated"`)

	var back State
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, Populated, back.Phase)
}

func TestView(t *testing.T) {
	s, _ := Init()
	s, _ = Update(s, ProfileLoaded{Profile: models.UserProfile{FirstName: "Ana", LastName: "Diaz"}})
	s, _ = Update(s, SummaryLoaded{Orders: []models.Order{{
		ID:          5,
		DateCreated: time.Date(2022, time.May, 1, 10, 0, 0, 0, time.UTC),
		Status:      "failed",
	}}})

	v := View(s, time.UTC)
	assert.Equal(t, "Ana Diaz", v.FullName)
	require.Len(t, v.Orders, 1)
	assert.Equal(t, "5/1/2022", v.Orders[0].OrderDate)
	assert.Equal(t, "badge-danger", v.Orders[0].Badge)
}
