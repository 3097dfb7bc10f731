package audio

import (
	"io"
	"math"
)

// Samples are 32-bit float little-endian stereo frames.
const (
	SampleRate   = 44100
	ChannelCount = 2
)

// MusicGain scales the background loop relative to effects.
const MusicGain = 0.35

// Generate returns stereo float32 samples for a one-shot sound.
// SoundMusic is not a one-shot and yields nil.
func Generate(s Sound) []byte {
	switch s {
	case SoundEat:
		return genEat()
	case SoundGameOver:
		return genGameOver()
	case SoundMove:
		return genMove()
	default:
		return nil
	}
}

func makeBuf(frames int) []byte {
	return make([]byte, frames*8)
}

// genEat: short rising FM chirp.
func genEat() []byte {
	n := int(0.09 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: three falling notes.
func genGameOver() []byte {
	n := int(0.75 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			mix[i] += fm(t, freq, 2.0, 2.0*env) * env * 0.32
			mix[i] += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMove: quiet low tick.
func genMove() []byte {
	n := int(0.03 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-float64(i) / float64(n) * 6)
		s := math.Sin(2*math.Pi*140*t) * env * 0.25
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// Music renders one bar of a minor arpeggio over a bass pulse.
// Play it through NewLoopReader.
func Music() []byte {
	const (
		bpm   = 112.0
		steps = 16
	)
	stepLen := 60.0 / bpm / 4
	n := int(stepLen * steps * SampleRate)
	arp := []float64{220.00, 261.63, 329.63, 261.63} // A3 C4 E4 C4
	bass := []float64{110.00, 110.00, 87.31, 98.00}  // A2 A2 F2 G2

	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		step := int(t / stepLen)
		trig := t - float64(step)*stepLen

		lead := math.Sin(2*math.Pi*arp[step%len(arp)]*t) * math.Exp(-trig*9) * 0.22
		b := bass[(step/4)%len(bass)]
		low := math.Sin(2*math.Pi*b*t) * 0.18
		if step%2 == 0 {
			low *= math.Exp(-trig * 4)
		} else {
			low *= 0.4
		}
		putStereoF32(buf, i, softSat(lead+low))
	}
	return buf
}

// NewClipReader returns a reader that yields data once.
func NewClipReader(data []byte) io.Reader {
	return &soundReader{data: data}
}

// NewLoopReader returns a reader that repeats data forever.
func NewLoopReader(data []byte) io.Reader {
	return &loopReader{data: data}
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

// loopReader repeats data forever.
type loopReader struct {
	data []byte
	pos  int
}

func (r *loopReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) {
		c := copy(p[n:], r.data[r.pos:])
		n += c
		r.pos = (r.pos + c) % len(r.data)
	}
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

// softSat applies gentle saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack, decay and release are fractions of the total duration.
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
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}
