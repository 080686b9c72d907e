package mymetrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {

	t.Run("Counters", func(t *testing.T) {
		// given
		m := New("checkout")

		// when
		m.Checkouts.WithLabelValues("Cash").Inc()
		m.Checkouts.WithLabelValues("Cash").Inc()
		m.Rejections.WithLabelValues("empty-cart").Inc()

		// then
		assert.Equal(t, 2.0, testutil.ToFloat64(m.Checkouts.WithLabelValues("Cash")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("empty-cart")))
		assert.Equal(t, 0.0, testutil.ToFloat64(m.PersistenceFailures.WithLabelValues("orders")))
	})

	t.Run("Independent registries", func(t *testing.T) {
		assert.NotPanics(t, func() {
			New("checkout")
			New("checkout")
		})
	})

	t.Run("Metrics endpoint", func(t *testing.T) {
		// given
		m := New("checkout")
		m.Checkouts.WithLabelValues("GCash").Inc()
		router := mux.NewRouter()
		m.RegisterEndpoints(context.TODO(), router)

		// when
		request, err := http.NewRequest(http.MethodGet, "/metrics", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `store_checkout_checkouts_total{payment_method="GCash"} 1`)
	})
}
