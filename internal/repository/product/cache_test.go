package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"garage-sale/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

type stubRepo struct {
	products  []domain.Product
	err       error
	listCalls int
	getCalls  int
}

func (s *stubRepo) List(_ context.Context) ([]domain.Product, error) {
	s.listCalls++
	return s.products, s.err
}

func (s *stubRepo) GetByIDs(_ context.Context, _ []int64) ([]domain.Product, error) {
	s.getCalls++
	return s.products, s.err
}

func (s *stubRepo) Insert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &p, nil
}

func cacheFixture(t *testing.T, next Repository) (Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewCached(next, rdb, time.Minute, nil), mr
}

func TestCachedListServesFromCache(t *testing.T) {
	next := &stubRepo{products: []domain.Product{{ID: 1, Name: "Lamp", Price: 24.50}}}
	repo, _ := cacheFixture(t, next)
	ctx := context.Background()

	first, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	second, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if next.listCalls != 1 {
		t.Fatalf("expected 1 underlying call, got %d", next.listCalls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Name != "Lamp" {
		t.Fatalf("unexpected results: %+v / %+v", first, second)
	}
}

func TestCachedInsertInvalidates(t *testing.T) {
	next := &stubRepo{products: []domain.Product{{ID: 1, Name: "Lamp"}}}
	repo, _ := cacheFixture(t, next)
	ctx := context.Background()

	if _, err := repo.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}
	if _, err := repo.Insert(ctx, domain.Product{Name: "Records", Price: 19.99}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := repo.List(ctx); err != nil {
		t.Fatalf("List: %v", err)
	}

	if next.listCalls != 2 {
		t.Fatalf("expected cache invalidation to force a reload, got %d calls", next.listCalls)
	}
}

func TestCachedListFailsOpen(t *testing.T) {
	next := &stubRepo{products: []domain.Product{{ID: 1, Name: "Lamp"}}}
	repo, mr := cacheFixture(t, next)
	mr.Close()

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List with redis down: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected products: %+v", got)
	}
}

func TestCachedGetByIDsBypassesCache(t *testing.T) {
	next := &stubRepo{products: []domain.Product{{ID: 1, Name: "Lamp"}}}
	repo, _ := cacheFixture(t, next)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.GetByIDs(ctx, []int64{1}); err != nil {
			t.Fatalf("GetByIDs: %v", err)
		}
	}
	if next.getCalls != 3 {
		t.Fatalf("GetByIDs must always hit the underlying store, got %d calls", next.getCalls)
	}
}

func TestCachedListPropagatesRepoError(t *testing.T) {
	next := &stubRepo{err: errors.New("db down")}
	repo, _ := cacheFixture(t, next)

	if _, err := repo.List(context.Background()); err == nil {
		t.Fatalf("expected underlying error")
	}
}
