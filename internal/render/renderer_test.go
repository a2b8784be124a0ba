package render

import (
	"strings"
	"testing"

	"github.com/pixelhop/runner-arcade/internal/caps"
	"github.com/pixelhop/runner-arcade/internal/entity"
	"github.com/pixelhop/runner-arcade/internal/particles"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "0000"},
		{5, "0005"},
		{42, "0042"},
		{150, "0150"},
		{9999, "9999"},
		{12345, "12345"},
		{-10, "0000"},
	}
	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%d) = %q, expected %q", tt.score, got, tt.want)
		}
	}
}

func testFrame() Frame {
	player := entity.NewPlayer(5, 24, 3, 3, -10)
	obstacles := entity.NewPool(func() *entity.Pooled {
		return &entity.Pooled{Entity: entity.Entity{Kind: entity.KindObstacle}}
	}, 4, 8)
	collectibles := entity.NewPool(func() *entity.Pooled {
		return &entity.Pooled{Entity: entity.Entity{Kind: entity.KindCollectible}}
	}, 4, 8)
	return Frame{
		Player:       player,
		Obstacles:    obstacles,
		Collectibles: collectibles,
		Particles:    particles.NewSystem(16, 0.1, 1, caps.Static{CPUs: 8}),
		Score:        150,
		HighScore:    9000,
		Speed:        1,
		GroundY:      24,
		Running:      true,
	}
}

func TestDrawRunningScene(t *testing.T) {
	r := NewRenderer(80, 28, Flags{DoubleBuffer: true})
	f := testFrame()

	s := r.Draw(f)

	if !strings.Contains(s.String(), "0150") {
		t.Error("HUD should show the zero-padded score")
	}
	if !strings.Contains(s.String(), "9000") {
		t.Error("HUD should show the high score")
	}
	if !strings.Contains(s.Row(int(f.GroundY)), string(groundRune)) {
		t.Error("ground line missing")
	}
	// Player body lands near its position
	found := false
	for y := 18; y <= 24; y++ {
		if strings.ContainsRune(s.Row(y), playerBody) {
			found = true
			break
		}
	}
	if !found {
		t.Error("player sprite not drawn")
	}
}

func TestDrawNarrowHUD(t *testing.T) {
	r := NewRenderer(30, 20, Flags{})
	f := testFrame()
	f.GroundY = 16

	s := r.Draw(f)

	if strings.Contains(s.Row(0), "SCORE") {
		t.Error("narrow terminals should drop HUD labels")
	}
	if !strings.Contains(s.Row(0), "0150") {
		t.Error("narrow HUD should still show the counter")
	}
}

func TestDrawObstaclesAndCollectibles(t *testing.T) {
	r := NewRenderer(60, 24, Flags{})
	f := testFrame()

	o := f.Obstacles.Acquire()
	o.Subtype = entity.ObstacleRock
	o.X, o.Y, o.W, o.H = 30, 18, 2, 2

	c := f.Collectibles.Acquire()
	c.Subtype = entity.CollectibleGem
	c.X, c.Y, c.W, c.H = 45, 12, 1, 1

	s := r.Draw(f)

	if s.GetCell(30, 18).Rune != rockRune {
		t.Error("rock obstacle not drawn")
	}
	if s.GetCell(45, 12).Rune != gemRune {
		t.Error("gem collectible not drawn")
	}
}

func TestDrawDoesNotMutateEntities(t *testing.T) {
	r := NewRenderer(60, 24, Flags{})
	f := testFrame()

	o := f.Obstacles.Acquire()
	o.X, o.Y, o.VX = 30, 18, -2
	f.Alpha = 0.5

	s := r.Draw(f)
	_ = s

	if o.X != 30 || o.Y != 18 {
		t.Error("interpolated draw must not move the entity")
	}
}

func TestOverlayStates(t *testing.T) {
	tests := []struct {
		name  string
		prep  func(*Frame)
		label string
	}{
		{"game over", func(f *Frame) { f.GameOver = true; f.Running = false }, "GAME OVER"},
		{"paused", func(f *Frame) { f.Paused = true }, "PAUSED"},
		{"idle", func(f *Frame) { f.Running = false }, "RUNNER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(60, 24, Flags{})
			f := testFrame()
			tt.prep(&f)
			s := r.Draw(f)
			if !strings.Contains(s.String(), tt.label) {
				t.Errorf("overlay %q not shown", tt.label)
			}
		})
	}
}

func TestFlashDecaysOverFrames(t *testing.T) {
	r := NewRenderer(40, 16, Flags{})
	f := testFrame()
	f.GroundY = 12

	r.Flash(2)

	s := r.Draw(f)
	if !strings.ContainsRune(s.String(), flashRune) {
		t.Fatal("flash frame missing")
	}
	s = r.Draw(f)
	if !strings.ContainsRune(s.String(), flashRune) {
		t.Fatal("flash should last the requested frames")
	}
	s = r.Draw(f)
	if strings.ContainsRune(s.String(), flashRune) {
		t.Error("flash should decay after its frames elapse")
	}
}

func TestShowHitboxes(t *testing.T) {
	r := NewRenderer(60, 24, Flags{ShowHitboxes: true})
	f := testFrame()

	o := f.Obstacles.Acquire()
	o.X, o.Y, o.W, o.H = 30, 15, 4, 3

	s := r.Draw(f)
	if s.GetCell(30, 15).Rune != '┌' {
		t.Error("hitbox outline missing with ShowHitboxes set")
	}
}
