package services

import (
	"context"
	"customer-portal/models"
	"customer-portal/orderlist"
	"net/url"
	"strconv"
	"time"
)

type CustomerOrdersService struct {
	client *restClient
}

func NewCustomerOrdersService(baseURL string, timeout time.Duration) *CustomerOrdersService {
	return &CustomerOrdersService{client: newRESTClient("orders", baseURL, timeout)}
}

func (s *CustomerOrdersService) GetSummary(ctx context.Context, token string) ([]models.Order, error) {
	return s.list(ctx, token, "/api/customer/orders/summary", nil)
}

func (s *CustomerOrdersService) SelectAll(ctx context.Context, token string, pageIndex, pageSize int) ([]models.Order, error) {
	return s.list(ctx, token, "/api/customer/orders", pageParams(pageIndex, pageSize))
}

func (s *CustomerOrdersService) GetDateRange(ctx context.Context, token, startDate, endDate string, pageIndex, pageSize int) ([]models.Order, error) {
	params := pageParams(pageIndex, pageSize)
	params.Set("startDate", startDate)
	params.Set("endDate", endDate)
	return s.list(ctx, token, "/api/customer/orders/daterange", params)
}

func (s *CustomerOrdersService) SearchAll(ctx context.Context, token string, pageIndex, pageSize int, query string) ([]models.Order, error) {
	params := pageParams(pageIndex, pageSize)
	params.Set("q", query)
	return s.list(ctx, token, "/api/customer/orders/search", params)
}

func (s *CustomerOrdersService) GetDateRangeSearch(ctx context.Context, token, startDate, endDate string, pageIndex, pageSize int, query string) ([]models.Order, error) {
	params := pageParams(pageIndex, pageSize)
	params.Set("startDate", startDate)
	params.Set("endDate", endDate)
	params.Set("q", query)
	return s.list(ctx, token, "/api/customer/orders/daterange/search", params)
}

// Fetch runs the call described by q.
func (s *CustomerOrdersService) Fetch(ctx context.Context, token string, q orderlist.Query) ([]models.Order, error) {
	switch q.Mode {
	case orderlist.ModeDateRangeSearch:
		return s.GetDateRangeSearch(ctx, token, q.StartDate, q.EndDate, q.PageIndex, q.PageSize, q.Search)
	case orderlist.ModeSearch:
		return s.SearchAll(ctx, token, q.PageIndex, q.PageSize, q.Search)
	case orderlist.ModeDateRange:
		return s.GetDateRange(ctx, token, q.StartDate, q.EndDate, q.PageIndex, q.PageSize)
	default:
		return s.SelectAll(ctx, token, q.PageIndex, q.PageSize)
	}
}

func (s *CustomerOrdersService) list(ctx context.Context, token, path string, params url.Values) ([]models.Order, error) {
	var resp models.ItemsResponse[models.Order]
	if err := s.client.get(ctx, token, path, params, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func pageParams(pageIndex, pageSize int) url.Values {
	return url.Values{
		"pageIndex": []string{strconv.Itoa(pageIndex)},
		"pageSize":  []string{strconv.Itoa(pageSize)},
	}
}
