package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agrovision/gw-crop-manager/internal/middlewares"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		mockSvc.EXPECT().
			Logout(gomock.Any(), "jti-1", exp).
			Return(nil)

		handler := NewLogoutHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		session := &middlewares.Session{Username: "john", TokenID: "jti-1", ExpiresAt: exp}
		req = req.WithContext(middlewares.SetSessionToContext(req.Context(), session))

		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, map[string]string{"message": "Logged out"}, body)
	})

	t.Run("no session", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		handler := NewLogoutHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revocation error", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		mockSvc.EXPECT().
			Logout(gomock.Any(), "jti-2", exp).
			Return(errors.New("redis down"))

		handler := NewLogoutHandler(mockSvc)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		session := &middlewares.Session{Username: "john", TokenID: "jti-2", ExpiresAt: exp}
		req = req.WithContext(middlewares.SetSessionToContext(req.Context(), session))

		rec := httptest.NewRecorder()
		handler(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
