package controllers

import (
	"context"
	"customer-portal/models"
	"customer-portal/orderlist"
	"customer-portal/program"
	"customer-portal/repositories"
	"customer-portal/views"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	SessionName    = "customer-portal-session"
	SearchQueryKey = "search_query"
)

type OrdersProvider interface {
	Fetch(ctx context.Context, token string, q orderlist.Query) ([]models.Order, error)
}

type OrdersController struct {
	orders   OrdersProvider
	states   repositories.ViewStateRepository
	sessions sessions.Store
	machine  orderlist.Machine
	logger   *zap.Logger
}

func NewOrdersController(orders OrdersProvider, states repositories.ViewStateRepository, store sessions.Store, machine orderlist.Machine, logger *zap.Logger) *OrdersController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrdersController{
		orders:   orders,
		states:   states,
		sessions: store,
		machine:  machine,
		logger:   logger.Named("customer_orders"),
	}
}

// @Summary Customer order list
// @Description Loads the first page of orders. Any query string switches to search mode, q is the search term
// @Tags Orders
// @Security BearerAuth
// @Produce json,html
// @Param q query string false "Search term"
// @Success 200 {object} models.Response{data=orderlist.Page}
// @Failure 401 {object} models.ErrorResponse
// @Router /orders [get]
func (ctrl *OrdersController) Mount(c *gin.Context) {
	cu, ok := currentCustomer(c)
	if !ok {
		return
	}

	s, cmds := ctrl.machine.Init(orderlist.NewNavigation(c.Request.URL.RawQuery))
	s, _ = ctrl.run(c.Request.Context(), cu, s, cmds)
	ctrl.saveAndRender(c, cu, s, "Orders loaded")
}

// @Summary Change orders page
// @Tags Orders
// @Security BearerAuth
// @Produce json,html
// @Param direction path string true "first, prev, next or last"
// @Success 200 {object} models.Response{data=orderlist.Page}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/pagination/{direction} [post]
func (ctrl *OrdersController) Paginate(c *gin.Context) {
	var event orderlist.Event
	switch c.Param("direction") {
	case "first":
		event = orderlist.FirstClicked{}
	case "prev":
		event = orderlist.PrevClicked{}
	case "next":
		event = orderlist.NextClicked{}
	case "last":
		event = orderlist.LastClicked{}
	default:
		respondError(c, http.StatusBadRequest, "Invalid direction", nil)
		return
	}
	ctrl.dispatch(c, event, "Page changed")
}

// @Summary Toggle the date picker
// @Description Opening only shows the picker. Closing clears the dates and reloads the first page
// @Tags Orders
// @Security BearerAuth
// @Produce json,html
// @Success 200 {object} models.Response{data=orderlist.Page}
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/calendar/toggle [post]
func (ctrl *OrdersController) ToggleCalendar(c *gin.Context) {
	ctrl.dispatch(c, orderlist.DatePickerToggled{}, "Calendar toggled")
}

// @Summary Change picked dates
// @Tags Orders
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json,html
// @Param start_date formData string false "Start date (YYYY-MM-DD)"
// @Param end_date formData string false "End date (YYYY-MM-DD)"
// @Success 200 {object} models.Response{data=orderlist.Page}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/calendar/dates [post]
func (ctrl *OrdersController) ChangeDates(c *gin.Context) {
	r, ok := ctrl.bindRange(c)
	if !ok {
		return
	}
	ctrl.dispatch(c, orderlist.DatesChanged{Range: r}, "Dates changed")
}

// @Summary Close the date picker
// @Description Loads the first page of the picked range when both dates are set
// @Tags Orders
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json,html
// @Param start_date formData string false "Start date (YYYY-MM-DD)"
// @Param end_date formData string false "End date (YYYY-MM-DD)"
// @Success 200 {object} models.Response{data=orderlist.Page}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/calendar/close [post]
func (ctrl *OrdersController) CloseCalendar(c *gin.Context) {
	r, ok := ctrl.bindRange(c)
	if !ok {
		return
	}
	ctrl.dispatch(c, orderlist.DatesClosed{Range: r}, "Dates applied")
}

// @Summary Open an order
// @Description Redirects to the order details page. Opened from a search, the search term is kept as flash state
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.RedirectResponse
// @Success 303
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/open [get]
func (ctrl *OrdersController) OpenOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid order ID", err)
		return
	}
	cu, ok := currentCustomer(c)
	if !ok {
		return
	}

	// Links from the dashboard summary arrive before any list was mounted;
	// those open without a search context.
	s, _, err := ctrl.load(c, cu)
	if err != nil {
		return
	}
	_, cmds := ctrl.machine.Update(s, orderlist.OrderClicked{ID: id})
	ctrl.follow(c, s, cmds)
}

// @Summary Back to the dashboard
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.RedirectResponse
// @Success 303
// @Router /orders/redo-search [get]
func (ctrl *OrdersController) RedoSearch(c *gin.Context) {
	cu, ok := currentCustomer(c)
	if !ok {
		return
	}
	if err := ctrl.states.Delete(c.Request.Context(), cu.UserID, repositories.OrdersView); err != nil {
		ctrl.logger.Warn("delete view state failed", zap.Int("user_id", cu.UserID), zap.Error(err))
	}
	s, cmds := ctrl.machine.Update(orderlist.State{}, orderlist.RedoSearchClicked{})
	ctrl.follow(c, s, cmds)
}

// dispatch applies one UI event to the stored order list. A state that asks
// for a fetch is saved before the fetch runs, so a repeated click sees the
// disabled buttons and does nothing. A no-op event is not saved, so it
// cannot overwrite the result of the fetch it collided with.
func (ctrl *OrdersController) dispatch(c *gin.Context, event orderlist.Event, message string) {
	cu, ok := currentCustomer(c)
	if !ok {
		return
	}

	s, found, err := ctrl.load(c, cu)
	if err != nil {
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "Order list not loaded", nil)
		return
	}

	ctx := c.Request.Context()
	prev := s
	s, cmds := ctrl.machine.Update(s, event)
	if len(cmds) == 0 {
		if !reflect.DeepEqual(prev, s) {
			ctrl.save(ctx, cu, s)
		}
		renderPage(c, views.OrdersPage, message, ctrl.machine.View(s))
		return
	}

	ctrl.save(ctx, cu, s)
	s, _ = ctrl.run(ctx, cu, s, cmds)
	ctrl.saveAndRender(c, cu, s, message)
}

// load reads the stored order list. On error the response is already
// written.
func (ctrl *OrdersController) load(c *gin.Context, cu customer) (orderlist.State, bool, error) {
	var s orderlist.State
	found, err := ctrl.states.Load(c.Request.Context(), cu.UserID, repositories.OrdersView, &s)
	if err != nil {
		ctrl.logger.Error("load view state failed", zap.Int("user_id", cu.UserID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to load orders", err)
		return s, false, err
	}
	return s, found, nil
}

func (ctrl *OrdersController) follow(c *gin.Context, s orderlist.State, cmds []orderlist.Command) {
	if nav, ok := firstNavigate(cmds); ok {
		ctrl.navigate(c, nav)
		return
	}
	renderPage(c, views.OrdersPage, "", ctrl.machine.View(s))
}

func (ctrl *OrdersController) navigate(c *gin.Context, nav orderlist.Navigate) {
	if nav.State == nil {
		redirectTo(c, nav.Path, nil)
		return
	}

	if ctrl.sessions != nil {
		session, err := ctrl.sessions.Get(c.Request, SessionName)
		if err == nil {
			session.AddFlash(nav.State.Query, SearchQueryKey)
			err = session.Save(c.Request, c.Writer)
		}
		if err != nil {
			ctrl.logger.Warn("session save failed", zap.Error(err))
		}
	}
	redirectTo(c, nav.Path, nav.State)
}

func (ctrl *OrdersController) bindRange(c *gin.Context) (orderlist.DateRange, bool) {
	var req models.DateRangeRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid date range", err)
		return orderlist.DateRange{}, false
	}

	start, err := orderlist.ParseDateInput(req.StartDate, ctrl.machine.Zone())
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid start date", err)
		return orderlist.DateRange{}, false
	}
	end, err := orderlist.ParseDateInput(req.EndDate, ctrl.machine.Zone())
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid end date", err)
		return orderlist.DateRange{}, false
	}
	return orderlist.DateRange{Start: start, End: end}, true
}

func (ctrl *OrdersController) run(ctx context.Context, cu customer, s orderlist.State, cmds []orderlist.Command) (orderlist.State, []orderlist.Command) {
	return program.Run(ctx, s, cmds, ctrl.machine.Update, ctrl.exec(cu))
}

func (ctrl *OrdersController) exec(cu customer) program.Exec[orderlist.Command, orderlist.Event] {
	return func(ctx context.Context, cmd orderlist.Command) (orderlist.Event, bool) {
		fetch, ok := cmd.(orderlist.FetchOrders)
		if !ok {
			return nil, false
		}

		q := fetch.Query
		orders, err := ctrl.orders.Fetch(ctx, cu.Token, q)
		if err != nil {
			ctrl.logger.Info("failed to get customer orders",
				zap.Int("user_id", cu.UserID),
				zap.Stringer("mode", q.Mode),
				zap.Int("page_index", q.PageIndex),
				zap.Error(err),
			)
			return orderlist.PageFailed{Err: err}, true
		}
		if len(orders) == 0 {
			ctrl.logger.Info("no customer orders returned",
				zap.Int("user_id", cu.UserID),
				zap.Stringer("mode", q.Mode),
				zap.Int("page_index", q.PageIndex),
			)
		}
		return orderlist.PageLoaded{Orders: orders}, true
	}
}

func (ctrl *OrdersController) save(ctx context.Context, cu customer, s orderlist.State) {
	if err := ctrl.states.Save(ctx, cu.UserID, repositories.OrdersView, s); err != nil {
		ctrl.logger.Warn("save view state failed", zap.Int("user_id", cu.UserID), zap.Error(err))
	}
}

func (ctrl *OrdersController) saveAndRender(c *gin.Context, cu customer, s orderlist.State, message string) {
	ctrl.save(c.Request.Context(), cu, s)
	renderPage(c, views.OrdersPage, message, ctrl.machine.View(s))
}

func firstNavigate(cmds []orderlist.Command) (orderlist.Navigate, bool) {
	for _, cmd := range cmds {
		if nav, ok := cmd.(orderlist.Navigate); ok {
			return nav, true
		}
	}
	return orderlist.Navigate{}, false
}
