package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrategyType_IsValid(t *testing.T) {
	for _, st := range AllStrategyTypes() {
		assert.True(t, st.IsValid(), st.String())
	}
	assert.False(t, StrategyType("pricing").IsValid())
	assert.False(t, StrategyType("").IsValid())
}

func TestBaseStrategy(t *testing.T) {
	s := NewBaseStrategy("discount", StrategyTypeRevenue, "Revenue after line discount")

	assert.Equal(t, "discount", s.Name())
	assert.Equal(t, StrategyTypeRevenue, s.Type())
	assert.Equal(t, "Revenue after line discount", s.Description())
}
