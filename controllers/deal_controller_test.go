package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastillo-dev/TaraNa/utils"
)

// postCreateDeal invokes the handler directly with a JSON body. The database
// is never initialized in these tests, so any handler path that reached
// storage would panic; a clean response proves the request was rejected
// before any write.
func postCreateDeal(t *testing.T, body string) (*httptest.ResponseRecorder, utils.StandardResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/owner/deals", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	CreateDeal(c)

	var resp utils.StandardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCreateDealRejectsOutOfRangeDiscount(t *testing.T) {
	tests := []struct {
		name     string
		discount float64
	}{
		{"above hundred", 150},
		{"exactly hundred", 100},
		{"negative", -25},
		{"fractional above hundred", 100.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := fmt.Sprintf(`{"product_id":1,"discount_percent":%v,"expires_at":"2099-01-01T00:00:00Z"}`, tt.discount)
			w, resp := postCreateDeal(t, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, "Discount must be between 0 and 100 (exclusive)", resp.Message)
		})
	}
}

func TestCreateDealRejectsZeroDiscount(t *testing.T) {
	w, resp := postCreateDeal(t, `{"product_id":1,"discount_percent":0,"expires_at":"2099-01-01T00:00:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp.Status)
}

func TestCreateDealRejectsPastExpiry(t *testing.T) {
	w, resp := postCreateDeal(t, `{"product_id":1,"discount_percent":20,"expires_at":"2020-01-01T00:00:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Expiration date must be in the future", resp.Message)
}
