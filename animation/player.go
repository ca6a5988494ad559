package animation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Speed is a playback multiplier: 2 plays twice as fast as 1.
type Speed float64

// The speeds offered by the visualizer.
const (
	SpeedHalf   Speed = 0.5
	SpeedNormal Speed = 1
	SpeedDouble Speed = 2
)

// DefaultBaseDelay is the pause between steps at SpeedNormal.
const DefaultBaseDelay = 500 * time.Millisecond

// ErrUnknownSpeed is returned by ParseSpeed for values other than 0.5, 1 and 2.
var ErrUnknownSpeed = errors.New("animation: speed must be one of 0.5, 1, 2")

// ParseSpeed accepts "0.5", "1", "2", optionally suffixed or prefixed with "x".
func ParseSpeed(s string) (Speed, error) {
	v := strings.TrimSpace(strings.ToLower(s))
	v = strings.TrimSuffix(strings.TrimPrefix(v, "x"), "x")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpeed, s)
	}
	switch sp := Speed(f); sp {
	case SpeedHalf, SpeedNormal, SpeedDouble:
		return sp, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpeed, s)
	}
}

// Delay returns the pause between steps for this speed given base.
func (s Speed) Delay(base time.Duration) time.Duration {
	return time.Duration(float64(base) / float64(s))
}

// PlayerOption configures a Player.
type PlayerOption func(*playerOptions)

type playerOptions struct {
	speed     Speed
	baseDelay time.Duration
	instant   bool
}

// WithSpeed sets the playback multiplier. Panics on a non-positive speed.
func WithSpeed(s Speed) PlayerOption {
	if !(s > 0) {
		panic("animation: WithSpeed(s<=0)")
	}

	return func(o *playerOptions) { o.speed = s }
}

// WithBaseDelay sets the pause between steps at SpeedNormal. Panics if d <= 0.
func WithBaseDelay(d time.Duration) PlayerOption {
	if d <= 0 {
		panic("animation: WithBaseDelay(d<=0)")
	}

	return func(o *playerOptions) { o.baseDelay = d }
}

// WithInstant disables pacing: Play delivers every step without waiting.
func WithInstant() PlayerOption {
	return func(o *playerOptions) { o.instant = true }
}

// Player hands the steps of a Sequence to a consumer one at a time.
// It is not safe for concurrent use.
type Player struct {
	seq     Sequence
	pos     int
	opts    playerOptions
	limiter *rate.Limiter
}

// NewPlayer creates a Player positioned at the first step of seq.
func NewPlayer(seq Sequence, opts ...PlayerOption) *Player {
	o := playerOptions{speed: SpeedNormal, baseDelay: DefaultBaseDelay}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Player{seq: seq, opts: o}
	if !o.instant {
		p.limiter = rate.NewLimiter(rate.Every(o.speed.Delay(o.baseDelay)), 1)
	}

	return p
}

// Interval returns the pause between steps, 0 in instant mode.
func (p *Player) Interval() time.Duration {
	if p.opts.instant {
		return 0
	}

	return p.opts.speed.Delay(p.opts.baseDelay)
}

// Next returns the next step without pacing; false once exhausted.
func (p *Player) Next() (Step, bool) {
	if p.pos >= len(p.seq) {
		return Step{}, false
	}
	s := p.seq[p.pos]
	p.pos++

	return s, true
}

// Remaining returns the number of steps not yet delivered.
func (p *Player) Remaining() int { return len(p.seq) - p.pos }

// Reset rewinds to the first step.
func (p *Player) Reset() { p.pos = 0 }

// Play delivers the remaining steps to fn, waiting Interval between them.
// The first step is delivered immediately. Play stops early when ctx is done
// (returning ctx's error) or when fn returns an error (returned wrapped).
func (p *Player) Play(ctx context.Context, fn func(Step) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, ok := p.Next()
		if !ok {
			return nil
		}
		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				p.pos--

				return err
			}
		}
		if err := fn(s); err != nil {
			return fmt.Errorf("animation: step %d: %w", p.pos-1, err)
		}
	}
}
