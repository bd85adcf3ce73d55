package strategy

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladislav25v/sales-bonus/internal/domain/sales"
	"github.com/vladislav25v/sales-bonus/internal/domain/shared"
	"github.com/vladislav25v/sales-bonus/internal/domain/shared/strategy"
	"github.com/vladislav25v/sales-bonus/internal/infrastructure/strategy/bonus"
)

// Mock revenue strategy for testing
type mockRevenueStrategy struct {
	strategy.BaseStrategy
}

func newMockRevenueStrategy(name string) *mockRevenueStrategy {
	return &mockRevenueStrategy{
		BaseStrategy: strategy.NewBaseStrategy(name, strategy.StrategyTypeRevenue, "Mock revenue strategy"),
	}
}

func (s *mockRevenueStrategy) CalculateRevenue(item sales.Item, product *sales.Product) float64 {
	return 0
}

// Mock bonus strategy for testing
type mockBonusStrategy struct {
	strategy.BaseStrategy
}

func newMockBonusStrategy(name string) *mockBonusStrategy {
	return &mockBonusStrategy{
		BaseStrategy: strategy.NewBaseStrategy(name, strategy.StrategyTypeBonus, "Mock bonus strategy"),
	}
}

func (s *mockBonusStrategy) CalculateBonus(rank, total int, seller sales.SellerStats) float64 {
	return 0
}

func TestNewStrategyRegistry(t *testing.T) {
	r := NewStrategyRegistry()
	assert.NotNil(t, r)
	assert.NotNil(t, r.revenueStrategies)
	assert.NotNil(t, r.bonusStrategies)
	assert.NotNil(t, r.defaults)
}

func TestRegisterRevenueStrategy(t *testing.T) {
	r := NewStrategyRegistry()

	t.Run("successful registration", func(t *testing.T) {
		s := newMockRevenueStrategy("test_revenue")
		err := r.RegisterRevenueStrategy(s)
		assert.NoError(t, err)
		assert.True(t, r.IsRegistered(strategy.StrategyTypeRevenue, "test_revenue"))
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		s := newMockRevenueStrategy("duplicate_revenue")
		err := r.RegisterRevenueStrategy(s)
		require.NoError(t, err)

		err = r.RegisterRevenueStrategy(s)
		assert.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestGetRevenueStrategy(t *testing.T) {
	r := NewStrategyRegistry()
	s := newMockRevenueStrategy("get_revenue")
	require.NoError(t, r.RegisterRevenueStrategy(s))

	t.Run("get by name", func(t *testing.T) {
		got, err := r.GetRevenueStrategy("get_revenue")
		assert.NoError(t, err)
		assert.Equal(t, "get_revenue", got.Name())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := r.GetRevenueStrategy("nonexistent")
		assert.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("get default when name is empty", func(t *testing.T) {
		require.NoError(t, r.SetDefault(strategy.StrategyTypeRevenue, "get_revenue"))
		got, err := r.GetRevenueStrategy("")
		assert.NoError(t, err)
		assert.Equal(t, "get_revenue", got.Name())
	})

	t.Run("no default set", func(t *testing.T) {
		r2 := NewStrategyRegistry()
		_, err := r2.GetRevenueStrategy("")
		assert.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestListRevenueStrategies(t *testing.T) {
	r := NewStrategyRegistry()
	require.NoError(t, r.RegisterRevenueStrategy(newMockRevenueStrategy("zeta")))
	require.NoError(t, r.RegisterRevenueStrategy(newMockRevenueStrategy("alpha")))

	assert.Equal(t, []string{"alpha", "zeta"}, r.ListRevenueStrategies())
}

func TestUnregisterRevenueStrategy(t *testing.T) {
	r := NewStrategyRegistry()
	require.NoError(t, r.RegisterRevenueStrategy(newMockRevenueStrategy("to_remove")))
	require.NoError(t, r.SetDefault(strategy.StrategyTypeRevenue, "to_remove"))

	t.Run("removes strategy and clears default", func(t *testing.T) {
		err := r.UnregisterRevenueStrategy("to_remove")
		assert.NoError(t, err)
		assert.False(t, r.IsRegistered(strategy.StrategyTypeRevenue, "to_remove"))
		assert.False(t, r.HasDefault(strategy.StrategyTypeRevenue))
	})

	t.Run("unknown strategy fails", func(t *testing.T) {
		err := r.UnregisterRevenueStrategy("to_remove")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestRegisterBonusStrategy(t *testing.T) {
	r := NewStrategyRegistry()

	require.NoError(t, r.RegisterBonusStrategy(newMockBonusStrategy("test_bonus")))
	assert.True(t, r.IsRegistered(strategy.StrategyTypeBonus, "test_bonus"))

	err := r.RegisterBonusStrategy(newMockBonusStrategy("test_bonus"))
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestGetBonusStrategy(t *testing.T) {
	r := NewStrategyRegistry()
	require.NoError(t, r.RegisterBonusStrategy(newMockBonusStrategy("get_bonus")))

	got, err := r.GetBonusStrategy("get_bonus")
	require.NoError(t, err)
	assert.Equal(t, "get_bonus", got.Name())

	_, err = r.GetBonusStrategy("")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = r.GetBonusStrategy("nonexistent")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListBonusStrategies(t *testing.T) {
	r := NewStrategyRegistry()
	require.NoError(t, r.RegisterBonusStrategy(newMockBonusStrategy("b")))
	require.NoError(t, r.RegisterBonusStrategy(newMockBonusStrategy("a")))

	assert.Equal(t, []string{"a", "b"}, r.ListBonusStrategies())
}

func TestUnregisterBonusStrategy(t *testing.T) {
	r := NewStrategyRegistry()
	require.NoError(t, r.RegisterBonusStrategy(newMockBonusStrategy("to_remove")))
	require.NoError(t, r.SetDefault(strategy.StrategyTypeBonus, "to_remove"))

	require.NoError(t, r.UnregisterBonusStrategy("to_remove"))
	assert.False(t, r.HasDefault(strategy.StrategyTypeBonus))
	assert.ErrorIs(t, r.UnregisterBonusStrategy("to_remove"), shared.ErrNotFound)
}

func TestSetDefault(t *testing.T) {
	r := NewStrategyRegistry()
	require.NoError(t, r.RegisterRevenueStrategy(newMockRevenueStrategy("default_test")))

	t.Run("set default successfully", func(t *testing.T) {
		err := r.SetDefault(strategy.StrategyTypeRevenue, "default_test")
		assert.NoError(t, err)
		assert.Equal(t, "default_test", r.GetDefault(strategy.StrategyTypeRevenue))
		assert.True(t, r.HasDefault(strategy.StrategyTypeRevenue))
	})

	t.Run("set default for nonexistent strategy fails", func(t *testing.T) {
		err := r.SetDefault(strategy.StrategyTypeRevenue, "nonexistent")
		assert.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("set default across types fails", func(t *testing.T) {
		err := r.SetDefault(strategy.StrategyTypeBonus, "default_test")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestIsRegistered(t *testing.T) {
	r := NewStrategyRegistry()
	require.NoError(t, r.RegisterRevenueStrategy(newMockRevenueStrategy("registered")))

	assert.True(t, r.IsRegistered(strategy.StrategyTypeRevenue, "registered"))
	assert.False(t, r.IsRegistered(strategy.StrategyTypeRevenue, "not_registered"))
	assert.False(t, r.IsRegistered(strategy.StrategyTypeBonus, "registered"))
	assert.False(t, r.IsRegistered("invalid_type", "registered"))
}

func TestStats(t *testing.T) {
	r := NewStrategyRegistry()
	require.NoError(t, r.RegisterRevenueStrategy(newMockRevenueStrategy("revenue1")))
	require.NoError(t, r.RegisterRevenueStrategy(newMockRevenueStrategy("revenue2")))
	require.NoError(t, r.RegisterBonusStrategy(newMockBonusStrategy("bonus1")))

	stats := r.Stats()
	assert.Equal(t, 2, stats[strategy.StrategyTypeRevenue])
	assert.Equal(t, 1, stats[strategy.StrategyTypeBonus])
}

func TestOptions(t *testing.T) {
	r, err := NewRegistryWithDefaults()
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		opts, err := r.Options("", "")
		require.NoError(t, err)
		assert.Equal(t, "discount", opts.Revenue.(strategy.Strategy).Name())
		assert.Equal(t, "profit_rank", opts.Bonus.(strategy.Strategy).Name())
	})

	t.Run("by name", func(t *testing.T) {
		opts, err := r.Options("list_price", "flat_rate")
		require.NoError(t, err)
		assert.Equal(t, "list_price", opts.Revenue.(strategy.Strategy).Name())
		assert.Equal(t, "flat_rate", opts.Bonus.(strategy.Strategy).Name())
	})

	t.Run("unknown bonus", func(t *testing.T) {
		_, err := r.Options("", "seniority")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestConcurrentAccess(t *testing.T) {
	r := NewStrategyRegistry()
	var wg sync.WaitGroup
	numGoroutines := 100

	// Concurrent registrations
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			name := string(rune('a' + (idx % 26)))
			// Each goroutine tries to register - some will succeed, some will get duplicate error
			_ = r.RegisterRevenueStrategy(newMockRevenueStrategy(name))
		}(i)
	}

	wg.Wait()

	list := r.ListRevenueStrategies()
	assert.NotEmpty(t, list)
	assert.LessOrEqual(t, len(list), 26)
}

func TestConcurrentReadWrite(t *testing.T) {
	r := NewStrategyRegistry()
	require.NoError(t, r.RegisterBonusStrategy(newMockBonusStrategy("concurrent_test")))

	var wg sync.WaitGroup
	numReaders := 50
	numWriters := 10

	for i := 0; i < numReaders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = r.GetBonusStrategy("concurrent_test")
				r.ListBonusStrategies()
				r.Stats()
			}
		}()
	}

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			name := string(rune('A' + idx))
			_ = r.RegisterBonusStrategy(newMockBonusStrategy(name))
		}(i)
	}

	wg.Wait()
}

func TestNewRegistryWithDefaults(t *testing.T) {
	r, err := NewRegistryWithDefaults()
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Equal(t, []string{"discount", "list_price"}, r.ListRevenueStrategies())
	assert.Equal(t, "discount", r.GetDefault(strategy.StrategyTypeRevenue))

	assert.Equal(t, []string{"flat_rate", "profit_rank"}, r.ListBonusStrategies())
	assert.Equal(t, "profit_rank", r.GetDefault(strategy.StrategyTypeBonus))

	b, err := r.GetBonusStrategy("")
	require.NoError(t, err)
	assert.InDelta(t, 15.0, b.CalculateBonus(0, 3, sales.SellerStats{Profit: 100}), 1e-9)
}

func TestNewRegistryWithRates(t *testing.T) {
	rates := bonus.DefaultRates()
	rates.Last = decimal.NewFromFloat(0.01)

	r, err := NewRegistryWithRates(rates, decimal.NewFromFloat(0.2))
	require.NoError(t, err)

	rank, err := r.GetBonusStrategy("profit_rank")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rank.CalculateBonus(4, 5, sales.SellerStats{Profit: 100}), 1e-9)

	flat, err := r.GetBonusStrategy("flat_rate")
	require.NoError(t, err)
	assert.InDelta(t, 20.0, flat.CalculateBonus(4, 5, sales.SellerStats{Profit: 100}), 1e-9)
}
