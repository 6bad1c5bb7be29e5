package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guitar-storefront/internal/cart"
)

// cartClient drives the cart endpoints as one browser session would.
type cartClient struct {
	t      *testing.T
	router *mux.Router
	cookie *http.Cookie
}

func newCartClient(t *testing.T) *cartClient {
	r, _ := newTestRouter()
	return &cartClient{t: t, router: r}
}

func (c *cartClient) do(method, path, body string) (*httptest.ResponseRecorder, cart.Cart) {
	c.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "storefront_session" {
			c.cookie = ck
		}
	}

	var snapshot cart.Cart
	if rec.Code == http.StatusOK {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	}
	return rec, snapshot
}

func TestCartStartsEmpty(t *testing.T) {
	c := newCartClient(t)

	rec, snapshot := c.do(http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, snapshot.Lines)
	assert.Zero(t, snapshot.Total)
}

func TestAddSameProductThreeTimes(t *testing.T) {
	c := newCartClient(t)

	var snapshot cart.Cart
	for i := 0; i < 3; i++ {
		rec, s := c.do(http.MethodPost, "/api/cart/items", `{"product_id":"1"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		snapshot = s
	}

	require.Len(t, snapshot.Lines, 1)
	assert.Equal(t, 3, snapshot.Lines[0].Quantity)
	assert.Equal(t, 897.0, snapshot.Total)
}

func TestAddThenRemoveLeavesOtherLine(t *testing.T) {
	c := newCartClient(t)

	c.do(http.MethodPost, "/api/cart/items", `{"product_id":"1"}`)
	c.do(http.MethodPost, "/api/cart/items", `{"product_id":"9"}`)
	rec, snapshot := c.do(http.MethodDelete, "/api/cart/items/1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, snapshot.Lines, 1)
	assert.Equal(t, "9", snapshot.Lines[0].Product.ID)
	assert.Equal(t, 3199.0, snapshot.Total)
}

func TestAddUnknownProduct(t *testing.T) {
	c := newCartClient(t)

	rec, _ := c.do(http.MethodPost, "/api/cart/items", `{"product_id":"999"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddOutOfStockProductRejected(t *testing.T) {
	c := newCartClient(t)

	// the StingRay is the out-of-stock fixture entry
	rec, _ := c.do(http.MethodPost, "/api/cart/items", `{"product_id":"12"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	_, snapshot := c.do(http.MethodGet, "/api/cart", "")
	assert.Empty(t, snapshot.Lines)
}

func TestUpdateQuantity(t *testing.T) {
	c := newCartClient(t)

	c.do(http.MethodPost, "/api/cart/items", `{"product_id":"1"}`)
	rec, snapshot := c.do(http.MethodPut, "/api/cart/items/1", `{"quantity":5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, snapshot.Lines, 1)
	assert.Equal(t, 5, snapshot.Lines[0].Quantity)
	assert.Equal(t, 1495.0, snapshot.Total)
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	c := newCartClient(t)

	c.do(http.MethodPost, "/api/cart/items", `{"product_id":"1"}`)
	rec, snapshot := c.do(http.MethodPut, "/api/cart/items/1", `{"quantity":0}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, snapshot.Lines)
	assert.Zero(t, snapshot.Total)
}

func TestRemoveAbsentLineIsNoop(t *testing.T) {
	c := newCartClient(t)

	c.do(http.MethodPost, "/api/cart/items", `{"product_id":"1"}`)
	rec, snapshot := c.do(http.MethodDelete, "/api/cart/items/999", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, snapshot.Lines, 1)
	assert.Equal(t, 299.0, snapshot.Total)
}

func TestClearCart(t *testing.T) {
	c := newCartClient(t)

	c.do(http.MethodPost, "/api/cart/items", `{"product_id":"1"}`)
	c.do(http.MethodPost, "/api/cart/items", `{"product_id":"9"}`)
	rec, snapshot := c.do(http.MethodDelete, "/api/cart", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, snapshot.Lines)
	assert.Zero(t, snapshot.Total)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	a := newCartClient(t)
	b := &cartClient{t: t, router: a.router}

	a.do(http.MethodPost, "/api/cart/items", `{"product_id":"1"}`)
	_, snapshot := b.do(http.MethodGet, "/api/cart", "")

	assert.Empty(t, snapshot.Lines)
}

func TestAddItemMissingBody(t *testing.T) {
	c := newCartClient(t)

	rec, _ := c.do(http.MethodPost, "/api/cart/items", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
