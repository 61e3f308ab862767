// Package dashboard is the customer dashboard view state. The profile and
// the order summary load independently; only the profile decides which
// screen is shown.
package dashboard

import "customer-portal/models"

const (
	CustomerRole   = 2
	NoResultsFound = "There were no results found."
)

type Phase int

const (
	Loading Phase = iota
	Onboarding
	Populated
)

func (p Phase) String() string {
	switch p {
	case Onboarding:
		return "onboarding"
	case Populated:
		return "populated"
	default:
		return "loading"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "onboarding":
		*p = Onboarding
	case "populated":
		*p = Populated
	default:
		*p = Loading
	}
	return nil
}

type State struct {
	Phase              Phase              `json:"phase"`
	User               models.UserProfile `json:"user"`
	Role               int                `json:"role"`
	Photo              bool               `json:"photo"`
	Orders             []models.Order     `json:"orders"`
	OrderSummaryExists bool               `json:"orderSummaryExists"`
	NoResultsFound     string             `json:"noResultsFound"`
}

type Event interface{ isEvent() }

type (
	ProfileLoaded           struct{ Profile models.UserProfile }
	ProfileFailed           struct{ Err error }
	SummaryLoaded           struct{ Orders []models.Order }
	SummaryFailed           struct{ Err error }
	AvatarUpdated           struct{ AvatarURL string }
	ProfileRefreshRequested struct{}
)

func (ProfileLoaded) isEvent()           {}
func (ProfileFailed) isEvent()           {}
func (SummaryLoaded) isEvent()           {}
func (SummaryFailed) isEvent()           {}
func (AvatarUpdated) isEvent()           {}
func (ProfileRefreshRequested) isEvent() {}

type Command interface{ isCommand() }

type (
	FetchProfile      struct{}
	FetchOrderSummary struct{}
)

func (FetchProfile) isCommand()      {}
func (FetchOrderSummary) isCommand() {}

func Init() (State, []Command) {
	s := State{
		Phase:          Loading,
		Role:           CustomerRole,
		Photo:          true,
		Orders:         []models.Order{},
		NoResultsFound: NoResultsFound,
	}
	return s, []Command{FetchProfile{}, FetchOrderSummary{}}
}

func Update(s State, e Event) (State, []Command) {
	switch e := e.(type) {
	case ProfileLoaded:
		if e.Profile.AvatarURL == "" {
			s.Photo = false
		}
		s.User = e.Profile
		s.Phase = Populated
		return s, nil

	case ProfileFailed:
		s.Phase = Onboarding
		return s, nil

	case SummaryLoaded:
		s.Orders = e.Orders
		if s.Orders == nil {
			s.Orders = []models.Order{}
		}
		s.OrderSummaryExists = true
		return s, nil

	case SummaryFailed:
		return s, nil

	case AvatarUpdated:
		user := s.User
		user.AvatarURL = e.AvatarURL
		s.User = user
		return s, nil

	case ProfileRefreshRequested:
		return s, []Command{FetchProfile{}}
	}
	return s, nil
}
