package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"cannonball/internal/world"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundLaunch SoundKind = iota
	SoundBounce
	SoundRest
	SoundHit
	SoundCapture
	SoundCleared
	SoundReset
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	cache  [SoundReset + 1][]byte
}

var globalAudio *AudioSystem

// activeBounces limits overlapping bounce thuds while the ball rolls.
var activeBounces int32

// InitAudio initializes the audio system at the given effect volume in [0,1].
func InitAudio(volume float64) error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	a := &AudioSystem{ctx: ctx, ready: ready, volume: world.Clamp(volume, 0, 1)}
	for k := range a.cache {
		a.cache[k] = generateSound(SoundKind(k))
	}
	globalAudio = a
	return nil
}

// PlaySound plays a procedurally generated sound effect. It is a no-op
// until the audio context is ready or when audio failed to start.
func PlaySound(kind SoundKind) {
	a := globalAudio
	if a == nil || kind < 0 || int(kind) >= len(a.cache) {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	if kind == SoundBounce {
		if atomic.LoadInt32(&activeBounces) >= 2 {
			return
		}
		atomic.AddInt32(&activeBounces, 1)
	}
	samples := a.cache[kind]
	go func() {
		if kind == SoundBounce {
			defer atomic.AddInt32(&activeBounces, -1)
		}
		reader := &soundReader{data: samples}
		player := a.ctx.NewPlayer(reader)
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundLaunch:
		return genLaunch()
	case SoundBounce:
		return genThud(0.12, 0.35)
	case SoundRest:
		return genThud(0.22, 0.55)
	case SoundHit:
		return genHit()
	case SoundCapture:
		return genChime([]float64{523.25, 659.25, 783.99, 1046.5}, 75) // C5 E5 G5 C6
	case SoundCleared:
		return genChime([]float64{440, 554.37, 659.25, 880, 1108.73}, 90)
	case SoundReset:
		return genClick()
	}
	return nil
}

// genLaunch: falling sub boom with a short noise crack.
func genLaunch() []byte {
	n := int(0.34 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0xCA77)
	lp := 0.0
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := 140 * math.Pow(30.0/140.0, p*1.8)
		phase += 2 * math.Pi * freq / SampleRate
		sub := math.Sin(phase) * math.Exp(-p*6) * 0.6

		crack := 0.0
		if p < 0.04 {
			crack = lcg(&seed) * (1 - p/0.04) * 0.7
		}
		lp = lp*0.9 + lcg(&seed)*0.1
		body := lp * math.Exp(-p*9) * 0.5

		putStereoF32(buf, i, softSat((sub+crack+body)*0.85))
	}
	return buf
}

// genThud: lowpassed noise over a short FM thump. Longer and heavier when
// the ball settles.
func genThud(dur, weight float64) []byte {
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	seed := uint64(11111)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 7)
		lp = lp*0.88 + lcg(&seed)*0.12
		thump := fm(t, 75, 0.5, 1.2) * math.Exp(-p*20)
		s := (lp*weight + thump*weight) * env
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genHit: short descending FM squeal.
func genHit() []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.015, 0.55, 0.1, 0.25)
		freq := 520 - 260*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.45
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.1
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genChime: ascending FM bell arpeggio, each note ringing over the next.
func genChime(freqs []float64, noteMs int) []byte {
	noteLen := SampleRate * noteMs / 1000
	tail := int(0.2 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 5.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genClick: crisp click and a brief high tone.
func genClick() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
