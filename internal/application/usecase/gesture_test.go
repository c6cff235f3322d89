package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

type switchRecorder struct {
	calls []string
}

func (s *switchRecorder) SwitchToNext(context.Context, entity.TabID) { s.calls = append(s.calls, "next") }
func (s *switchRecorder) SwitchToPrev(context.Context, entity.TabID) { s.calls = append(s.calls, "prev") }

func stroke(g *GestureRecognizer, start time.Time, points []entity.Point, step time.Duration) time.Time {
	at := start
	for _, p := range points {
		g.RecordAt(p, at)
		at = at.Add(step)
	}
	return at.Add(-step)
}

func testGestureConfig(natural bool) GestureConfig {
	cfg := DefaultGestureConfig()
	cfg.NaturalScrolling = natural
	return cfg
}

func TestGestureRecognizer_Classify(t *testing.T) {
	base := time.Unix(1000, 0)

	tests := []struct {
		name   string
		points []entity.Point
		step   time.Duration
		want   GestureDirection
	}{
		{
			name:   "fast right swipe",
			points: []entity.Point{{X: 0, Y: 100}, {X: 60, Y: 105}, {X: 120, Y: 110}},
			step:   50 * time.Millisecond,
			want:   GestureRight,
		},
		{
			name:   "fast left swipe",
			points: []entity.Point{{X: 300, Y: 100}, {X: 200, Y: 100}, {X: 100, Y: 90}},
			step:   40 * time.Millisecond,
			want:   GestureLeft,
		},
		{
			name:   "too short",
			points: []entity.Point{{X: 0, Y: 0}, {X: 40, Y: 0}},
			step:   20 * time.Millisecond,
			want:   GestureNone,
		},
		{
			name:   "too vertical",
			points: []entity.Point{{X: 0, Y: 0}, {X: 100, Y: 80}},
			step:   50 * time.Millisecond,
			want:   GestureNone,
		},
		{
			name:   "too slow",
			points: []entity.Point{{X: 0, Y: 0}, {X: 85, Y: 0}},
			step:   290 * time.Millisecond,
			want:   GestureNone,
		},
		{
			name:   "single sample",
			points: []entity.Point{{X: 0, Y: 0}},
			step:   10 * time.Millisecond,
			want:   GestureNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGestureRecognizer(&switchRecorder{}, testGestureConfig(false))
			end := stroke(g, base, tt.points, tt.step)
			assert.Equal(t, tt.want, g.ClassifyAt(end))
		})
	}
}

func TestGestureRecognizer_OldSamplesExpire(t *testing.T) {
	g := NewGestureRecognizer(&switchRecorder{}, testGestureConfig(false))
	base := time.Unix(1000, 0)

	g.RecordAt(entity.Point{X: 0, Y: 0}, base)
	g.RecordAt(entity.Point{X: 200, Y: 0}, base.Add(100*time.Millisecond))

	assert.Equal(t, GestureRight, g.ClassifyAt(base.Add(200*time.Millisecond)))
	assert.Equal(t, GestureNone, g.ClassifyAt(base.Add(350*time.Millisecond)))
}

func TestGestureRecognizer_Trigger(t *testing.T) {
	base := time.Unix(1000, 0)
	right := []entity.Point{{X: 0, Y: 100}, {X: 150, Y: 100}}

	tests := []struct {
		name    string
		natural bool
		points  []entity.Point
		want    []string
		handled bool
	}{
		{name: "right is next", points: right, want: []string{"next"}, handled: true},
		{name: "natural right is prev", natural: true, points: right, want: []string{"prev"}, handled: true},
		{name: "left is prev", points: []entity.Point{{X: 300, Y: 0}, {X: 100, Y: 0}}, want: []string{"prev"}, handled: true},
		{name: "no gesture keeps menu", points: []entity.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}, want: nil, handled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tabs := &switchRecorder{}
			g := NewGestureRecognizer(tabs, testGestureConfig(tt.natural))
			end := stroke(g, base, tt.points, 100*time.Millisecond)

			assert.Equal(t, tt.handled, g.TriggerAt(context.Background(), end))
			assert.Equal(t, tt.want, tabs.calls)

			// The buffer is consumed by the trigger.
			assert.False(t, g.TriggerAt(context.Background(), end))
		})
	}
}

func TestGestureRecognizer_SwitchesRegistryTabs(t *testing.T) {
	f := newRegistryFixture(t, TabRegistryConfig{})
	f.allowWindowTitles()
	ids := f.create(t, 3)
	g := NewGestureRecognizer(f.registry, testGestureConfig(false))
	base := time.Unix(1000, 0)

	end := stroke(g, base, []entity.Point{{X: 0, Y: 0}, {X: 200, Y: 10}}, 100*time.Millisecond)
	assert.True(t, g.TriggerAt(context.Background(), end))
	assert.Equal(t, ids[0], f.registry.ActiveTabID())
}
