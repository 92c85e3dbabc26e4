package suggest

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), 0)
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"summary", "bullet", "skills"} {
		k, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, Kind(s), k)
	}
	_, err := ParseKind("poem")
	assert.Error(t, err)
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	ctx := context.Background()
	a := newTestGenerator(42)
	b := newTestGenerator(42)

	for i := 0; i < 10; i++ {
		got1, err := a.Generate(ctx, KindBullet, Context{})
		require.NoError(t, err)
		got2, err := b.Generate(ctx, KindBullet, Context{})
		require.NoError(t, err)
		assert.Equal(t, got1, got2)
	}
}

func TestSummaryUsesContext(t *testing.T) {
	g := newTestGenerator(1)
	got, err := g.Generate(context.Background(), KindSummary, Context{JobTitle: "Staff Engineer", Industry: "fintech"})
	require.NoError(t, err)
	assert.Contains(t, got, "Staff Engineer")
	assert.NotContains(t, got, "{title}")
	assert.NotContains(t, got, "{industry}")
}

func TestSummaryDefaults(t *testing.T) {
	g := newTestGenerator(1)
	// draw a few so both placeholder defaults are exercised
	for i := 0; i < 10; i++ {
		got, err := g.Generate(context.Background(), KindSummary, Context{})
		require.NoError(t, err)
		assert.Contains(t, got, "professional")
		assert.NotContains(t, got, "{title}")
	}
}

func TestBulletComesFromPool(t *testing.T) {
	g := newTestGenerator(7)
	got, err := g.Generate(context.Background(), KindBullet, Context{})
	require.NoError(t, err)
	assert.Contains(t, bullets, got)
}

func TestSkillsTable(t *testing.T) {
	g := newTestGenerator(1)
	ctx := context.Background()

	got, err := g.Generate(ctx, KindSkills, Context{JobTitle: "Software Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "JavaScript, TypeScript, React, Node.js, Python, SQL, Git, AWS", got)

	// exact match only; close titles fall back to the generic set
	got, err = g.Generate(ctx, KindSkills, Context{JobTitle: "software engineer"})
	require.NoError(t, err)
	assert.Equal(t, defaultSkills, got)

	got, err = g.Generate(ctx, KindSkills, Context{})
	require.NoError(t, err)
	assert.Equal(t, defaultSkills, got)
}

func TestDelayHonorsContext(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)), 1e9)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, KindBullet, Context{})
	assert.ErrorIs(t, err, context.Canceled)
}
