package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuapod/orderstats-backend/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, nil)
	require.NoError(t, err)
	return client
}

func TestFetchContributionMarginBuildsQuery(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/contribute-margin", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"result": {"01-06-2025": {"date": "01-06-2025", "revenue": 1000, "spend": 300, "orders": 10, "ads": 50}},
			"orders": [{"id": "o1", "orderId": "1001", "revenue": "95.50", "createdAt": "2025-06-01T10:00:00Z", "app": "Paradis"}],
			"newCustomer": [{"customerId": "c1"}]
		}`))
	})

	payload, err := client.FetchContributionMargin(context.Background(), Window{StartDate: 1700000000, EndDate: 1700600000, App: "Paradis"})
	require.NoError(t, err)

	assert.Equal(t, []string{"1700000000"}, gotQuery["startDate"])
	assert.Equal(t, []string{"1700600000"}, gotQuery["endDate"])
	assert.Equal(t, []string{"Paradis"}, gotQuery["app"])

	require.Contains(t, payload.Result, "01-06-2025")
	assert.InDelta(t, 1000, payload.Result["01-06-2025"].Revenue, 1e-9)
	require.Len(t, payload.Orders, 1)
	assert.Equal(t, "95.50", payload.Orders[0].Revenue)
	require.Len(t, payload.NewCustomers, 1)
	assert.Equal(t, "c1", payload.NewCustomers[0].CustomerID)
}

func TestFetchContributionMarginOmitsOptionalParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.False(t, query.Has("endDate"))
		assert.False(t, query.Has("app"))
		_, _ = w.Write([]byte(`{"result": {}, "orders": []}`))
	})

	payload, err := client.FetchContributionMargin(context.Background(), Window{StartDate: 1700000000})
	require.NoError(t, err)
	assert.NotNil(t, payload.Result)
	assert.Empty(t, payload.Orders)
}

func TestFetchContributionMarginUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FetchContributionMargin(context.Background(), Window{StartDate: 1})
	assert.Error(t, err)
}

func TestTriggerSync(t *testing.T) {
	var method, path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusAccepted)
	})

	require.NoError(t, client.TriggerSync(context.Background()))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/orders", path)
}

func TestTriggerSyncFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	assert.Error(t, client.TriggerSync(context.Background()))
}
