package minmax_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	datekit "github.com/goliatone/go-datekit"
	"github.com/goliatone/go-datekit/plugins/minmax"
)

func TestMinMax(t *testing.T) {
	t.Parallel()

	env, err := datekit.NewEnv(datekit.WithLocation(time.UTC), datekit.WithPlugin(minmax.Plugin, nil))
	require.NoError(t, err)
	assert.True(t, env.HasPlugin("minmax"))

	a := env.New("2021-05-05")
	b := env.New("2020-01-01")
	c := env.New("2021-12-31")

	assert.True(t, minmax.Min(a, b, c).Equal(b))
	assert.True(t, minmax.Max(a, b, c).Equal(c))
	assert.True(t, minmax.Min(a).Equal(a))
	assert.True(t, minmax.Max(c, c).Equal(c))
}

func TestMinMaxInvalid(t *testing.T) {
	t.Parallel()

	env, err := datekit.NewEnv(datekit.WithLocation(time.UTC))
	require.NoError(t, err)

	a := env.New("2021-05-05")
	invalid := env.New("not a date")

	assert.False(t, minmax.Min(a, invalid).IsValid())
	assert.False(t, minmax.Max(invalid, a).IsValid())
}

func TestMinMaxEmpty(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := minmax.Max()
	require.True(t, got.IsValid())
	assert.WithinDuration(t, before, got.Time(), time.Minute)
}

func TestMinMaxStatics(t *testing.T) {
	t.Parallel()

	pinned := time.Date(2021, time.May, 15, 10, 30, 0, 0, time.UTC)
	env, err := datekit.NewEnv(
		datekit.WithLocation(time.UTC),
		datekit.WithClock(func() time.Time { return pinned }),
		datekit.WithPlugin(minmax.Plugin, nil),
	)
	require.NoError(t, err)

	statics, ok := minmax.For(env)
	require.True(t, ok)

	a := env.New("2021-05-05")
	b := env.New("2020-01-01")
	assert.True(t, statics.Min(a, b).Equal(b))
	assert.True(t, statics.Max(a, b).Equal(a))
	assert.True(t, statics.Max().Equal(env.Now()), "empty list reads the Env clock")
	assert.False(t, statics.Min(a, env.Invalid()).IsValid())

	bare, err := datekit.NewEnv(datekit.WithLocation(time.UTC))
	require.NoError(t, err)
	_, ok = minmax.For(bare)
	assert.False(t, ok)
	_, ok = minmax.For(nil)
	assert.False(t, ok)
}
