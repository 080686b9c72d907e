package myhttp

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/storecli/lib/myerrors"
	"github.com/MarcGrol/storecli/lib/mylog"
)

func TestResponseWriter(t *testing.T) {
	writer := NewWriter(mylog.NewStandardLogger("test", &bytes.Buffer{}))

	t.Run("success", func(t *testing.T) {
		// given
		response := httptest.NewRecorder()

		// when
		writer.Write(context.TODO(), response, http.StatusOK, map[string]int{"OrderID": 1})

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "application/json", response.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"OrderID":1}`, response.Body.String())
	})

	t.Run("classified error", func(t *testing.T) {
		// given
		response := httptest.NewRecorder()

		// when
		writer.WriteError(context.TODO(), response, 2, myerrors.NewNotFoundError(fmt.Errorf("order 7 not found")))

		// then
		assert.Equal(t, http.StatusNotFound, response.Code)
		assert.JSONEq(t, `{"ErrorCode":2,"Kind":"not-found","Message":"order 7 not found"}`, response.Body.String())
	})
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		kind   myerrors.Kind
		status int
	}{
		{kind: myerrors.KindInvalidInput, status: http.StatusBadRequest},
		{kind: myerrors.KindEmptyCart, status: http.StatusBadRequest},
		{kind: myerrors.KindNotFound, status: http.StatusNotFound},
		{kind: myerrors.KindPersistence, status: http.StatusServiceUnavailable},
		{kind: myerrors.KindInternal, status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.status, HTTPStatus(tc.kind))
		})
	}
}
