package knowledge

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optlike/optlike/option"
)

func TestPredicates(t *testing.T) {
	known := Known("the sky is blue")
	unknown := Unknown[string]()

	assert.True(t, known.IsKnown())
	assert.False(t, known.IsUnknown())
	assert.True(t, unknown.IsUnknown())
	assert.False(t, unknown.IsKnown())
}

func TestConversions(t *testing.T) {
	opt := Known(42).Option()
	require.True(t, opt.IsSome())
	assert.Equal(t, 42, opt.Unwrap())
	assert.True(t, Unknown[int]().Option().IsNone())

	assert.True(t, KnowledgeFromOption(option.Some(42)).Equal(Known(42)))
	assert.True(t, KnowledgeFromOption(option.None[int]()).Equal(Unknown[int]()))
}

func TestRoundTrip(t *testing.T) {
	known := Known("fact")
	assert.True(t, KnowledgeFromOption(known.Option()).Equal(known))

	unknown := Unknown[string]()
	assert.True(t, KnowledgeFromOption(unknown.Option()).Equal(unknown))
}

func TestMap(t *testing.T) {
	calls := 0
	length := func(s string) int {
		calls++
		return len(s)
	}

	assert.True(t, MapKnowledge(Known("fact"), length).Equal(Known(4)))
	assert.True(t, MapKnowledge(Unknown[string](), length).Equal(Unknown[int]()))
	assert.Equal(t, 1, calls, "transform must not run for an Unknown")
}

func TestUnwrap(t *testing.T) {
	assert.Equal(t, 42, Known(42).Unwrap())

	assert.PanicsWithValue(t, "Knowledge: Unwrap of Unknown value", func() {
		Unknown[int]().Unwrap()
	})
}

func TestExpect(t *testing.T) {
	assert.Equal(t, 42, Known(42).Expect("should be known"))

	assert.PanicsWithValue(t, "should be known", func() {
		Unknown[int]().Expect("should be known")
	})
}

func TestUnwrapFallbacks(t *testing.T) {
	assert.Equal(t, 0, Unknown[int]().UnwrapOrDefault())
	assert.Equal(t, 42, Known(42).UnwrapOrDefault())

	assert.Equal(t, 9, Unknown[int]().UnwrapOrElse(func() int { return 9 }))
	assert.Equal(t, 42, Known(42).UnwrapOrElse(func() int { return 9 }))
}

func TestCompare(t *testing.T) {
	// Unknown sorts before any Known, matching the universal option type.
	assert.Equal(t, -1, Unknown[int]().Compare(Known(-1000)))
	assert.Equal(t, 1, Known(-1000).Compare(Unknown[int]()))
	assert.Equal(t, 0, Unknown[int]().Compare(Unknown[int]()))
	assert.Equal(t, -1, Known(1).Compare(Known(2)))
	assert.Equal(t, 0, Known(2).Compare(Known(2)))

	assert.True(t, Unknown[int]().Less(Known(-1000)))
	assert.False(t, Known(1).Less(Known(1)))
}

func TestSortOrder(t *testing.T) {
	values := []Knowledge[int]{Known(3), Unknown[int](), Known(1), Unknown[int](), Known(2)}
	slices.SortFunc(values, Knowledge[int].Compare)

	assert.True(t, values[0].IsUnknown())
	assert.True(t, values[1].IsUnknown())
	assert.Equal(t, 1, values[2].Unwrap())
	assert.Equal(t, 2, values[3].Unwrap())
	assert.Equal(t, 3, values[4].Unwrap())
}

func TestClone(t *testing.T) {
	known := Known(42)
	assert.True(t, known.Clone().Equal(known))
	assert.True(t, Unknown[int]().Clone().IsUnknown())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Known(42)", Known(42).String())
	assert.Equal(t, "Unknown", Unknown[int]().String())
}
