package chi

import (
	"context"
	"net/http/httptest"

	gochi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ucasfl/milvus/internal/domain/schema"
	collectionuc "github.com/ucasfl/milvus/internal/usecase/collection"
	healthuc "github.com/ucasfl/milvus/internal/usecase/health"
)

// mockEngine lets each test plug in just the behaviors it needs.
type mockEngine struct {
	createFn   func(ctx context.Context, col schema.Collection, fields []schema.Field) error
	describeFn func(ctx context.Context, name string) (schema.Collection, []schema.Field, error)
	listFn     func(ctx context.Context) ([]schema.Collection, error)
	dropFn     func(ctx context.Context, name string) error
	hasFn      func(ctx context.Context, name string) (bool, error)
}

func (m *mockEngine) CreateCollection(ctx context.Context, col schema.Collection, fields []schema.Field) error {
	if m.createFn != nil {
		return m.createFn(ctx, col, fields)
	}
	return nil
}

func (m *mockEngine) DescribeCollection(ctx context.Context, name string) (schema.Collection, []schema.Field, error) {
	if m.describeFn != nil {
		return m.describeFn(ctx, name)
	}
	return schema.Collection{}, nil, nil
}

func (m *mockEngine) ListCollections(ctx context.Context) ([]schema.Collection, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockEngine) DropCollection(ctx context.Context, name string) error {
	if m.dropFn != nil {
		return m.dropFn(ctx, name)
	}
	return nil
}

func (m *mockEngine) HasCollection(ctx context.Context, name string) (bool, error) {
	if m.hasFn != nil {
		return m.hasFn(ctx, name)
	}
	return false, nil
}

type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

// newTestServer wires a Server over the given mocks and returns an httptest
// server with all routes registered.
func newTestServer(engine *mockEngine, pinger *mockPinger) *httptest.Server {
	if engine == nil {
		engine = &mockEngine{}
	}
	if pinger == nil {
		pinger = &mockPinger{}
	}

	collections := collectionuc.New(engine, schema.NameRules{}, 1024)
	health := healthuc.New(pinger)
	srv := NewServer(collections, health, zap.NewNop())

	r := gochi.NewRouter()
	srv.Register(r)
	return httptest.NewServer(r)
}
