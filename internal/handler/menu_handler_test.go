package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"abbey-bites/internal/model"
	"abbey-bites/internal/schema"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMenuService is a mock implementation of MenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) CreateMenuItem(ctx context.Context, payload *schema.MenuItemPayload) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

func (m *MockMenuService) ListMenuItems(ctx context.Context, category string) ([]model.MenuItemDoc, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItemDoc), args.Error(1)
}

func TestMenuHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		method         string
		requestBody    interface{}
		mockReturn     string
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:   "Success",
			method: http.MethodPost,
			requestBody: map[string]interface{}{
				"name":  "Jollof Rice",
				"price": 12.50,
			},
			mockReturn:     "9f0c2a6e-ffaa-4bd0-8e1b-1f4f7c0f1234",
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:   "Validation error",
			method: http.MethodPost,
			requestBody: map[string]interface{}{
				"price": -1,
			},
			mockError: &schema.ValidationError{Fields: []schema.FieldError{
				{Field: "name", Message: "is required"},
				{Field: "price", Message: "must be greater than or equal to 0"},
			}},
			expectedStatus: http.StatusUnprocessableEntity,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			requestBody:    "invalid json",
			expectedStatus: http.StatusUnprocessableEntity,
			expectService:  false,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodDelete,
			requestBody:    nil,
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
		{
			name:   "Storage error",
			method: http.MethodPost,
			requestBody: map[string]interface{}{
				"name":  "Suya",
				"price": 8,
			},
			mockError:      errors.New("database connection failed"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockMenuService)
			handler := NewMenuHandler(mockService, logger)

			var body []byte
			if tt.requestBody != nil {
				if str, ok := tt.requestBody.(string); ok {
					body = []byte(str)
				} else {
					var err error
					body, err = json.Marshal(tt.requestBody)
					require.NoError(t, err)
				}
			}

			if tt.expectService {
				mockService.On("CreateMenuItem", mock.Anything, mock.AnythingOfType("*schema.MenuItemPayload")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/menu", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp model.CreateResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.mockReturn, resp.ID)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestMenuHandler_Create_ValidationDetails(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockMenuService)
	handler := NewMenuHandler(mockService, logger)

	mockService.On("CreateMenuItem", mock.Anything, mock.Anything).
		Return("", &schema.ValidationError{Fields: []schema.FieldError{
			{Field: "name", Message: "is required"},
		}})

	req := httptest.NewRequest(http.MethodPost, "/api/menu", bytes.NewBufferString(`{"price": 5}`))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "name", resp.Fields[0].Field)
}

func TestMenuHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	testDocs := []model.MenuItemDoc{
		{ID: "id-1", MenuItem: model.MenuItem{Name: "Jollof Rice", Price: 12.50, Category: "Mains", IsAvailable: true}},
		{ID: "id-2", MenuItem: model.MenuItem{Name: "Zobo", Price: 2, Category: "Drinks", IsAvailable: true}},
	}

	tests := []struct {
		name             string
		method           string
		target           string
		expectedCategory string
		mockReturn       []model.MenuItemDoc
		mockError        error
		expectedStatus   int
		expectService    bool
		expectedCount    int
	}{
		{
			name:             "Success without filter",
			method:           http.MethodGet,
			target:           "/api/menu",
			expectedCategory: "",
			mockReturn:       testDocs,
			expectedStatus:   http.StatusOK,
			expectService:    true,
			expectedCount:    2,
		},
		{
			name:             "Success with category filter",
			method:           http.MethodGet,
			target:           "/api/menu?category=Drinks",
			expectedCategory: "Drinks",
			mockReturn:       testDocs[1:],
			expectedStatus:   http.StatusOK,
			expectService:    true,
			expectedCount:    1,
		},
		{
			name:             "Empty result is a JSON array",
			method:           http.MethodGet,
			target:           "/api/menu",
			expectedCategory: "",
			mockReturn:       nil,
			expectedStatus:   http.StatusOK,
			expectService:    true,
			expectedCount:    0,
		},
		{
			name:             "Storage error",
			method:           http.MethodGet,
			target:           "/api/menu",
			expectedCategory: "",
			mockError:        errors.New("database error"),
			expectedStatus:   http.StatusInternalServerError,
			expectService:    true,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodDelete,
			target:         "/api/menu",
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockMenuService)
			handler := NewMenuHandler(mockService, logger)

			if tt.expectService {
				mockService.On("ListMenuItems", mock.Anything, tt.expectedCategory).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var docs []model.MenuItemDoc
				require.NoError(t, json.NewDecoder(w.Body).Decode(&docs))
				assert.Len(t, docs, tt.expectedCount)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestMenuHandler_List_IDInResponse(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockMenuService)
	handler := NewMenuHandler(mockService, logger)

	mockService.On("ListMenuItems", mock.Anything, "").
		Return([]model.MenuItemDoc{
			{ID: "abc-123", MenuItem: model.MenuItem{Name: "Jollof Rice", Price: 12.50, Category: "Mains", IsAvailable: true}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// The identifier must appear as a flat string "id" field alongside the
	// entity fields.
	var raw []map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "abc-123", raw[0]["id"])
	assert.Equal(t, "Jollof Rice", raw[0]["name"])
	assert.Equal(t, true, raw[0]["is_available"])
}
