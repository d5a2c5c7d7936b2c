package handlers_test

import (
	"ItemGate/internal/config"
	"ItemGate/internal/handlers"
	"ItemGate/internal/model"
	"ItemGate/internal/repo"
	"ItemGate/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// мок хранилища для путей с ошибками
type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) List(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) Create(ctx context.Context, name string) (*model.Item, error) {
	args := m.Called(ctx, name)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) Update(ctx context.Context, id int64, name string) (*model.Item, error) {
	args := m.Called(ctx, id, name)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *hMockItemRepo) Reset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ repo.ItemRepository = (*hMockItemRepo)(nil)

// newRouter собирает роутер поверх переданного хранилища
func newRouter(t *testing.T, r repo.ItemRepository) http.Handler {
	t.Helper()
	logger := zap.NewNop().Sugar()
	creds, err := service.NewStaticCredentials(service.DefaultUsername, service.DefaultPassword)
	require.NoError(t, err)
	h := handlers.NewHandler(
		service.NewItemService(r, logger),
		service.NewAuthService(creds),
		logger,
		&config.Config{Port: config.DefaultPort},
	)
	return h.Router
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func doRaw(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeItems(t *testing.T, rr *httptest.ResponseRecorder) []model.Item {
	t.Helper()
	var items []model.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	return items
}
