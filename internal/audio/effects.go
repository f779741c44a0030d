package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType - форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator генерирует волну с линейным сдвигом частоты от freq до endFreq.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator - тон постоянной частоты.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep - тон, частота которого плавно идёт от from к to.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope - упрощённая огибающая: линейная атака и линейное затухание.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume оборачивает поток громкостью vol в линейной шкале.
// log2(0) = -Inf, поэтому нулевая громкость - это Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// CreateLaunchSound - короткий восходящий свист перехватчика.
func CreateLaunchSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := 120 * time.Millisecond
	s := NewEnvelope(NewSweep(500, 1400, d, WaveSaw, rate), d, 5*time.Millisecond, 80*time.Millisecond, rate)
	return newVolume(s, vol*0.4)
}

// CreateExplosionSound - шумовой хлопок с низким гулом.
func CreateExplosionSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := 350 * time.Millisecond
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 300*time.Millisecond, rate)
	rumble := NewEnvelope(NewSweep(120, 40, d, WaveSine, rate), d, 2*time.Millisecond, 250*time.Millisecond, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.5), newVolume(rumble, 0.6)), vol)
}

// CreateStructureLostSound - тяжёлый низкий удар при потере города или батареи.
func CreateStructureLostSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := 500 * time.Millisecond
	s := NewEnvelope(NewSweep(110, 55, d, WaveSquare, rate), d, 5*time.Millisecond, 400*time.Millisecond, rate)
	return newVolume(s, vol*0.5)
}

// CreateVictorySound - восходящее мажорное арпеджио.
func CreateVictorySound(rate beep.SampleRate, vol float64) beep.Streamer {
	step := 140 * time.Millisecond
	return newVolume(beep.Seq(
		tone(523.25, step, WaveSine, rate),
		tone(659.25, step, WaveSine, rate),
		tone(783.99, step, WaveSine, rate),
		tone(1046.5, 3*step, WaveSine, rate),
	), vol)
}

// CreateDefeatSound - нисходящая минорная фраза.
func CreateDefeatSound(rate beep.SampleRate, vol float64) beep.Streamer {
	step := 220 * time.Millisecond
	return newVolume(beep.Seq(
		tone(392, step, WaveSaw, rate),
		tone(311.13, step, WaveSaw, rate),
		tone(261.63, 3*step, WaveSaw, rate),
	), vol*0.5)
}
