package render

import (
	"fmt"
	"math"

	"github.com/pixelhop/runner-arcade/internal/entity"
	"github.com/pixelhop/runner-arcade/internal/particles"
)

// Visual characters for the runner scene.
const (
	playerBody   = '█'
	playerHead   = '◆'
	playerLeg1   = '╱'
	playerLeg2   = '╲'
	cactusRune   = '▓'
	rockRune     = '▒'
	coinRune     = '◉'
	gemRune      = '◆'
	glowRune     = '·'
	groundRune   = '═'
	hillRune     = '∩'
	cloudRune    = '~'
	flashRune    = '░'
	particleRune = '•'
	sparkRune    = '*'
)

// Flags select optional render features.
type Flags struct {
	ShowFPS      bool
	ShowHitboxes bool
	DoubleBuffer bool
}

// Frame is the settled simulation state drawn for one display refresh. The
// renderer only reads; drawing never mutates simulation state.
type Frame struct {
	Player       *entity.Player
	Obstacles    *entity.Pool
	Collectibles *entity.Pool
	Particles    *particles.System
	Score        int
	HighScore    int
	Speed        float64
	FPS          float64
	Alpha        float64 // Interpolation fraction of a pending simulation step
	GroundY      float64
	Distance     float64 // Total scrolled distance, drives parallax
	Running      bool
	Paused       bool
	GameOver     bool
}

// glowOffsets is the halo stencil cached around glowing collectibles.
var glowOffsets = [...][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// Renderer owns the screen buffer and the z-ordered draw passes:
// background, ground, collectibles, obstacles, player, particles, HUD.
type Renderer struct {
	screen      *Screen
	flags       Flags
	flashFrames int
	glowCache   map[int]Cell // Collectible subtype -> cached halo cell
}

// NewRenderer creates a renderer with a width×height screen.
func NewRenderer(width, height int, flags Flags) *Renderer {
	return &Renderer{
		screen:    NewScreen(width, height, flags.DoubleBuffer),
		flags:     flags,
		glowCache: make(map[int]Cell),
	}
}

// Screen exposes the underlying buffer for the platform layer.
func (r *Renderer) Screen() *Screen {
	return r.screen
}

// Resize adjusts the screen buffer to a new terminal size.
func (r *Renderer) Resize(width, height int) {
	r.screen.Resize(width, height)
}

// Flash schedules a full-screen collision flash for the next n frames.
func (r *Renderer) Flash(n int) {
	if n > r.flashFrames {
		r.flashFrames = n
	}
}

// Draw renders one frame into the back buffer and flips it. The returned
// screen is the published front buffer.
func (r *Renderer) Draw(f Frame) *Screen {
	s := r.screen
	s.Clear()

	r.drawBackground(f)
	r.drawGround(f)
	r.drawCollectibles(f)
	r.drawObstacles(f)
	r.drawPlayer(f)
	r.drawParticles(f)
	r.drawHUD(f)
	r.drawOverlays(f)

	s.Flip()
	return s
}

// drawBackground paints two parallax layers: distant clouds and near hills,
// each scrolling at a fraction of the ground speed.
func (r *Renderer) drawBackground(f Frame) {
	s := r.screen
	w := s.Width()

	cloudRow := 2
	hillRow := int(f.GroundY) - 1
	if hillRow <= cloudRow {
		return
	}

	cloudShift := int(f.Distance*0.25) % 16
	for x := -cloudShift; x < w; x += 16 {
		s.SetColored(x, cloudRow, cloudRune, ColorGray)
		s.SetColored(x+1, cloudRow, cloudRune, ColorGray)
	}

	hillShift := int(f.Distance*0.5) % 11
	for x := -hillShift; x < w; x += 11 {
		s.SetColored(x, hillRow, hillRune, ColorGray)
		s.SetColored(x+1, hillRow, hillRune, ColorGray)
	}
}

func (r *Renderer) drawGround(f Frame) {
	s := r.screen
	s.DrawHLine(0, int(f.GroundY), s.Width(), groundRune, ColorDefault)
}

// lerpX returns the draw column of a pooled entity, advanced by the
// interpolation fraction of its per-step motion.
func lerpX(e *entity.Pooled, speed, alpha float64) int {
	return int(math.Round(e.X + e.VX*speed*alpha))
}

func (r *Renderer) drawCollectibles(f Frame) {
	if f.Collectibles == nil {
		return
	}
	s := r.screen
	f.Collectibles.ForEachActive(func(e *entity.Pooled) {
		x := lerpX(e, f.Speed, f.Alpha)
		y := int(math.Round(e.Y))

		// Cached halo around the item; pulse with the animation phase
		if int(e.Phase*4)%2 == 0 {
			cell := r.glowSprite(e.Subtype)
			for _, off := range glowOffsets {
				s.SetCell(x+off[0], y+off[1], cell)
			}
		}

		switch e.Subtype {
		case entity.CollectibleGem:
			s.SetColored(x, y, gemRune, ColorCyan)
		default:
			s.SetColored(x, y, coinRune, ColorBrightYellow)
		}

		r.maybeHitbox(e.X, e.Y, e.W, e.H)
	})
}

// glowSprite returns the cached halo cell for a collectible subtype.
func (r *Renderer) glowSprite(subtype int) Cell {
	if cached, ok := r.glowCache[subtype]; ok {
		return cached
	}
	color := ColorYellow
	if subtype == entity.CollectibleGem {
		color = ColorCyan
	}
	cell := Cell{Rune: glowRune, Color: color}
	r.glowCache[subtype] = cell
	return cell
}

func (r *Renderer) drawObstacles(f Frame) {
	if f.Obstacles == nil {
		return
	}
	s := r.screen
	f.Obstacles.ForEachActive(func(e *entity.Pooled) {
		x := lerpX(e, f.Speed, f.Alpha)
		y := int(math.Round(e.Y))
		w := int(e.W)
		h := int(e.H)

		ch := cactusRune
		color := ColorGreen
		if e.Subtype == entity.ObstacleRock {
			ch = rockRune
			color = ColorGray
		}
		s.FillRect(x, y, w, h, ch, color)

		r.maybeHitbox(e.X, e.Y, e.W, e.H)
	})
}

func (r *Renderer) drawPlayer(f Frame) {
	p := f.Player
	if p == nil {
		return
	}
	s := r.screen

	x := int(math.Round(p.X))
	y := int(math.Round(p.Y + p.VY*f.Alpha))

	// 3x3 runner sprite, legs animated by scroll distance while grounded
	s.SetColored(x+1, y, playerHead, ColorBrightWhite)
	s.SetColored(x+2, y, playerBody, ColorWhite)
	s.SetColored(x, y+1, playerBody, ColorWhite)
	s.SetColored(x+1, y+1, playerBody, ColorWhite)
	s.SetColored(x+2, y+1, playerBody, ColorWhite)

	airborne := p.Y+p.H < p.GroundY-0.5
	legPhase := int(f.Distance)%10 < 5
	switch {
	case airborne:
		s.SetColored(x, y+2, playerLeg1, ColorWhite)
		s.SetColored(x+1, y+2, playerLeg2, ColorWhite)
	case legPhase:
		s.SetColored(x, y+2, playerLeg1, ColorWhite)
		s.SetColored(x+2, y+2, playerLeg2, ColorWhite)
	default:
		s.SetColored(x+1, y+2, playerLeg1, ColorWhite)
		s.SetColored(x+2, y+2, playerLeg2, ColorWhite)
	}

	r.maybeHitbox(p.X, p.Y, p.W, p.H)
}

// particleColor maps the particle palette onto screen colors.
func particleColor(c particles.Color) Color {
	switch c {
	case particles.Yellow:
		return ColorBrightYellow
	case particles.Orange:
		return ColorOrange
	case particles.Red:
		return ColorBrightRed
	case particles.Green:
		return ColorBrightGreen
	case particles.Cyan:
		return ColorCyan
	case particles.Magenta:
		return ColorMagenta
	default:
		return ColorBrightWhite
	}
}

func (r *Renderer) drawParticles(f Frame) {
	if f.Particles == nil {
		return
	}
	s := r.screen
	f.Particles.ForEachActive(func(p *particles.Particle) {
		ch := particleRune
		if p.RenderSize() >= 1 {
			ch = sparkRune
		}
		s.SetColored(int(math.Round(p.X)), int(math.Round(p.Y)), ch, particleColor(p.Color))
	})
}

// drawHUD lays the score line out responsively: full labels on wide
// terminals, bare counters on narrow ones.
func (r *Renderer) drawHUD(f Frame) {
	s := r.screen
	w := s.Width()

	score := FormatScore(f.Score)
	high := FormatScore(f.HighScore)

	if w >= 44 {
		s.DrawText(2, 0, fmt.Sprintf(" SCORE %s ", score), ColorBrightWhite)
		hi := fmt.Sprintf(" HI %s ", high)
		s.DrawText(w-len(hi)-2, 0, hi, ColorGray)
	} else {
		s.DrawText(1, 0, score, ColorBrightWhite)
		s.DrawText(w-len(high)-1, 0, high, ColorGray)
	}

	if r.flags.ShowFPS && f.FPS > 0 {
		fps := fmt.Sprintf(" %2.0f fps ", f.FPS)
		s.DrawText(w-len(fps)-2, 1, fps, ColorGray)
	}
}

func (r *Renderer) drawOverlays(f Frame) {
	s := r.screen

	if r.flashFrames > 0 {
		r.flashFrames--
		for y := 0; y < s.Height(); y++ {
			for x := 0; x < s.Width(); x++ {
				if s.back[y][x] == blank {
					s.SetColored(x, y, flashRune, ColorBrightRed)
				}
			}
		}
	}

	switch {
	case f.GameOver:
		r.centeredBox("GAME OVER", fmt.Sprintf("Score %s  |  R to restart", FormatScore(f.Score)))
	case f.Paused:
		r.centeredBox("PAUSED", "P to resume")
	case !f.Running:
		r.centeredBox("RUNNER", "Space to start")
	}
}

// centeredBox draws a message box in the middle of the screen.
func (r *Renderer) centeredBox(title, subtitle string) {
	s := r.screen
	w, h := s.Width(), s.Height()

	boxW := len(title)
	if len(subtitle) > boxW {
		boxW = len(subtitle)
	}
	boxW += 4
	boxH := 5
	x := (w - boxW) / 2
	y := (h - boxH) / 2

	s.FillRect(x, y, boxW, boxH, ' ', ColorDefault)
	s.OutlineRect(x, y, boxW, boxH, ColorDefault)
	s.DrawText(x+(boxW-len(title))/2, y+1, title, ColorBrightWhite)
	s.DrawText(x+(boxW-len(subtitle))/2, y+3, subtitle, ColorGray)
}

// maybeHitbox outlines an entity's collision box when the debug flag is on.
func (r *Renderer) maybeHitbox(x, y, w, h float64) {
	if !r.flags.ShowHitboxes {
		return
	}
	r.screen.OutlineRect(int(x), int(y), int(w), int(h), ColorMagenta)
}

// FormatScore renders a score zero-padded to four digits. Negative values
// clamp to zero; scores past 9999 keep their full width.
func FormatScore(score int) string {
	if score < 0 {
		score = 0
	}
	return fmt.Sprintf("%04d", score)
}
