package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"socialfeed/internal/apperrors"
	"socialfeed/internal/config"
	handlers "socialfeed/internal/handler"
	"socialfeed/internal/models"
)

func newTestHandlers(auth *MockAuthService, user *MockUserService, post *MockPostService) *handlers.Handlers {
	return &handlers.Handlers{
		AuthService: auth,
		UserService: user,
		PostService: post,
		Cfg:         &config.Config{MaxUploadSize: 1024},
		Validate:    validator.New(),
	}
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "Успешная регистрация",
			body: map[string]string{"username": "alice", "email": "a@x.com", "password": "secret1"},
			mockSetup: func(auth *MockAuthService) {
				auth.On("Register", mock.Anything, mock.Anything).
					Return(&models.PublicUser{UserID: "u1", Username: "alice", Email: "a@x.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Дубликат username — 400",
			body: map[string]string{"username": "alice", "email": "b@x.com", "password": "secret2"},
			mockSetup: func(auth *MockAuthService) {
				auth.On("Register", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("пользователь уже существует: %w", apperrors.ErrConflict))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Неверный email — 400 без вызова сервиса",
			body:           map[string]string{"username": "alice", "email": "not-an-email", "password": "secret1"},
			mockSetup:      func(auth *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Короткий пароль — 400",
			body:           map[string]string{"username": "alice", "email": "a@x.com", "password": "123"},
			mockSetup:      func(auth *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := new(MockAuthService)
			tt.mockSetup(mockAuth)

			handler := newTestHandlers(mockAuth, new(MockUserService), new(MockPostService))

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))

			rr := httptest.NewRecorder()
			handler.Register(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusCreated {
				var user models.PublicUser
				json.Unmarshal(rr.Body.Bytes(), &user)
				assert.Equal(t, "alice", user.Username)
				// password_hash не должен попадать в ответ
				assert.NotContains(t, rr.Body.String(), "passwordHash")
			}

			mockAuth.AssertExpectations(t)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(*MockAuthService)
		expectedStatus int
		expectToken    bool
	}{
		{
			name: "Успешный вход выдает токен",
			body: map[string]string{"email": "a@x.com", "password": "secret1"},
			mockSetup: func(auth *MockAuthService) {
				auth.On("Login", mock.Anything, "a@x.com", "secret1").
					Return(&models.PublicUser{UserID: "u1", Username: "alice"}, "token123", nil)
			},
			expectedStatus: http.StatusOK,
			expectToken:    true,
		},
		{
			name: "Неверный пароль — 401",
			body: map[string]string{"email": "a@x.com", "password": "wrong"},
			mockSetup: func(auth *MockAuthService) {
				auth.On("Login", mock.Anything, "a@x.com", "wrong").
					Return(nil, "", fmt.Errorf("неверный пароль: %w", apperrors.ErrAuth))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Неизвестный email — 404",
			body: map[string]string{"email": "nobody@x.com", "password": "secret1"},
			mockSetup: func(auth *MockAuthService) {
				auth.On("Login", mock.Anything, "nobody@x.com", "secret1").
					Return(nil, "", fmt.Errorf("пользователь не найден: %w", apperrors.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := new(MockAuthService)
			tt.mockSetup(mockAuth)

			handler := newTestHandlers(mockAuth, new(MockUserService), new(MockPostService))

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))

			rr := httptest.NewRecorder()
			handler.Login(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectToken {
				var response handlers.AuthResponse
				json.Unmarshal(rr.Body.Bytes(), &response)
				assert.Equal(t, "token123", response.Token)
				assert.Equal(t, "u1", response.User.UserID)
			}

			mockAuth.AssertExpectations(t)
		})
	}
}
