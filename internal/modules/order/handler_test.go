package order

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, repo *mockRepo) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandlerPlaceOrder(t *testing.T) {
	repo := newMockRepo()
	itemID := uuid.NewString()
	repo.catalog[itemID] = catalogEntry{price: 25, active: true}
	srv := newTestServer(t, repo)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", PlaceOrderRequest{
		CustomerID: uuid.NewString(),
		Items:      []CartItem{{CatalogItemID: itemID, Quantity: 2}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var o Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&o))
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 50.0, o.Subtotal)
}

func TestHandlerPlaceOrderEmptyCart(t *testing.T) {
	srv := newTestServer(t, newMockRepo())

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", PlaceOrderRequest{
		CustomerID: uuid.NewString(),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlerPlaceOrderInactiveItem(t *testing.T) {
	repo := newMockRepo()
	itemID := uuid.NewString()
	repo.catalog[itemID] = catalogEntry{price: 25, active: false}
	srv := newTestServer(t, repo)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", PlaceOrderRequest{
		CustomerID: uuid.NewString(),
		Items:      []CartItem{{CatalogItemID: itemID, Quantity: 1}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandlerUpdateStatus(t *testing.T) {
	repo := newMockRepo()
	o := newTestOrder(t, repo, 10, 1)
	srv := newTestServer(t, repo)

	resp := doJSON(t, http.MethodPatch, srv.URL+"/api/v1/orders/"+o.ID.String()+"/status",
		UpdateStatusRequest{Status: "SHIPPED"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "PENDING cannot jump to SHIPPED")

	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/v1/orders/"+o.ID.String()+"/status",
		UpdateStatusRequest{Status: "CONFIRMED"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandlerUnknownOrder(t *testing.T) {
	srv := newTestServer(t, newMockRepo())

	resp := doJSON(t, http.MethodPatch, srv.URL+"/api/v1/orders/"+uuid.NewString()+"/status",
		UpdateStatusRequest{Status: "CONFIRMED"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/orders/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
