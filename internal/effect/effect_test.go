package effect_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cutsea110/payroll-core/internal/effect"
)

type unitCtx struct{ calls int }

func TestEffect_PureAndMap(t *testing.T) {
	e := effect.Map(effect.Pure[unitCtx](2), func(a int) int { return a * 21 })
	ctx := &unitCtx{}
	got, err := e.Run(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestEffect_AndThen_ShortCircuitsOnFailure(t *testing.T) {
	boom := errors.New("boom")
	first := effect.Fail[unitCtx, int](boom)
	second := false

	chained := effect.AndThen(first, func(int) effect.Effect[unitCtx, int] {
		second = true
		return effect.Pure[unitCtx](0)
	})

	_, err := chained.Run(&unitCtx{})
	assert.ErrorIs(t, err, boom)
	assert.False(t, second, "continuation must not run after a failure")
}

func TestEffect_WithCtx_MutatesContext(t *testing.T) {
	e := effect.WithCtx(func(ctx *unitCtx) (int, error) {
		ctx.calls++
		return ctx.calls, nil
	})
	ctx := &unitCtx{}
	got, err := e.Run(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, 1, ctx.calls)
}

func TestEffect_MapErr(t *testing.T) {
	boom := errors.New("boom")
	wrapped := errors.New("wrapped")
	e := effect.MapErr(effect.Fail[unitCtx, int](boom), func(error) error { return wrapped })
	_, err := e.Run(&unitCtx{})
	assert.ErrorIs(t, err, wrapped)
}
