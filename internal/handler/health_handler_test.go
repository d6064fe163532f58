package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"abbey-bites/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDiagnosticsRepository is a mock implementation of DiagnosticsRepository.
type MockDiagnosticsRepository struct {
	mock.Mock
}

func (m *MockDiagnosticsRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDiagnosticsRepository) DatabaseName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockDiagnosticsRepository) ListCollections(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestHealthHandler_Root(t *testing.T) {
	logger := zerolog.Nop()
	handler := NewHealthHandler(new(MockDiagnosticsRepository), true, logger)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.Root(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.RootResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Abbey Bites API is running", resp.Message)
}

func TestHealthHandler_Test(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		databaseURLSet bool
		pingError      error
		collections    []string
		listError      error
		check          func(t *testing.T, resp model.DiagnosticsResponse)
	}{
		{
			name:           "Database reachable",
			databaseURLSet: true,
			collections:    []string{"menuitem", "order"},
			check: func(t *testing.T, resp model.DiagnosticsResponse) {
				assert.Equal(t, "running", resp.Backend)
				assert.Equal(t, "connected", resp.Database)
				assert.Equal(t, "set", resp.DatabaseURL)
				assert.Equal(t, "abbeybites", resp.DatabaseName)
				assert.Equal(t, "connected", resp.ConnectionStatus)
				assert.Equal(t, []string{"menuitem", "order"}, resp.Collections)
			},
		},
		{
			name:           "Database unreachable",
			databaseURLSet: false,
			pingError:      errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			check: func(t *testing.T, resp model.DiagnosticsResponse) {
				assert.Equal(t, "running", resp.Backend)
				assert.True(t, strings.HasPrefix(resp.Database, "error: "))
				assert.Equal(t, "not set", resp.DatabaseURL)
				assert.Equal(t, "not connected", resp.ConnectionStatus)
				assert.Empty(t, resp.Collections)
			},
		},
		{
			name:           "Error text truncated to 50 characters",
			databaseURLSet: true,
			pingError:      errors.New(strings.Repeat("x", 200)),
			check: func(t *testing.T, resp model.DiagnosticsResponse) {
				assert.Equal(t, "error: "+strings.Repeat("x", 50), resp.Database)
			},
		},
		{
			name:           "Connected but collection listing fails",
			databaseURLSet: true,
			listError:      errors.New("permission denied for table documents"),
			check: func(t *testing.T, resp model.DiagnosticsResponse) {
				assert.True(t, strings.HasPrefix(resp.Database, "connected but error: "))
				assert.Equal(t, "connected", resp.ConnectionStatus)
				assert.Empty(t, resp.Collections)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockDiagnosticsRepository)
			handler := NewHealthHandler(mockRepo, tt.databaseURLSet, logger)

			mockRepo.On("Ping", mock.Anything).Return(tt.pingError)
			if tt.pingError == nil {
				mockRepo.On("DatabaseName").Return("abbeybites")
				mockRepo.On("ListCollections", mock.Anything, 10).Return(tt.collections, tt.listError)
			}

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			handler.Test(w, req)

			// The diagnostic endpoint never fails the request.
			assert.Equal(t, http.StatusOK, w.Code)

			var resp model.DiagnosticsResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			tt.check(t, resp)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, strings.Repeat("a", 50), truncate(strings.Repeat("a", 80), 50))
	assert.Equal(t, "", truncate("", 50))
}
