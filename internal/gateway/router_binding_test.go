package gateway

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/isdelr/crud-auth-be/internal/api"
	"github.com/isdelr/crud-auth-be/internal/auth"
	"github.com/isdelr/crud-auth-be/internal/services"
	"github.com/isdelr/crud-auth-be/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_AccountRouter(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	router := api.NewRouter(services.NewAccountService(store.Unavailable{}, tokens), nil)
	handler := NewHandler(router)

	token, err := tokens.Issue("alice")
	require.NoError(t, err)

	tests := []struct {
		name       string
		req        events.APIGatewayProxyRequest
		wantStatus int
		wantBody   string
	}{
		{
			name:       "greeting",
			req:        events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/crud"},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Hello from the CRUD Lambda Function!"}`,
		},
		{
			name:       "me without token",
			req:        events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/users/me"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Token required"}`,
		},
		{
			name: "me with token",
			req: events.APIGatewayProxyRequest{
				HTTPMethod: http.MethodGet,
				Path:       "/users/me",
				Headers:    map[string]string{"Authorization": "Bearer " + token},
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"username":"alice"}`,
		},
		{
			name: "delete another account",
			req: events.APIGatewayProxyRequest{
				HTTPMethod:     http.MethodDelete,
				Path:           "/users/bob",
				Headers:        map[string]string{"Authorization": "Bearer " + token},
				PathParameters: map[string]string{"id": "bob"},
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Unauthorized action"}`,
		},
		{
			name: "register with empty body",
			req: events.APIGatewayProxyRequest{
				HTTPMethod: http.MethodPost,
				Path:       "/auth/register",
				Headers:    map[string]string{"Content-Type": "application/json"},
				Body:       `{}`,
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Invalid request body"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := handler(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.JSONEq(t, tt.wantBody, resp.Body)
		})
	}
}
