package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

// TestOscillatorRange verifies every wave shape stays within [-1, 1]
func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, w := range waves {
		t.Run(w.name, func(t *testing.T) {
			osc := NewOscillator(220.0, 50*time.Millisecond, w.wave, rate)
			samples := make([][2]float64, 200)
			n, ok := osc.Stream(samples)

			if !ok || n != 200 {
				t.Fatalf("Expected 200 samples, got %d (ok=%v)", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
					t.Fatalf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Fatalf("Sample %d: expected identical channels", i)
				}
			}
			if osc.Err() != nil {
				t.Errorf("Expected no error, got: %v", osc.Err())
			}
		})
	}
}

// TestOscillatorSquare verifies square wave only produces full-scale values
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)
	total, _ := drain(osc)
	if total != expected {
		t.Errorf("Expected %d samples, got %d", expected, total)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if ok || n != 0 {
		t.Errorf("Expected drained oscillator, got n=%d ok=%v", n, ok)
	}
}

// TestEnvelopeAttackPhase verifies attack ramp-up
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond

	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, attack, 10*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(attack))
	n, ok := env.Stream(samples)
	if !ok {
		t.Fatal("Expected envelope to stream successfully")
	}

	first := math.Abs(samples[0][0])
	last := math.Abs(samples[n-1][0])
	if first >= last {
		t.Errorf("Expected attack phase to ramp up, but first=%f >= last=%f", first, last)
	}
}

// TestEnvelopeReleaseEndsNearZero verifies the release fades to silence
func TestEnvelopeReleaseEndsNearZero(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond

	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, 0, 20*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(duration))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), n)
	}
	if tail := math.Abs(samples[n-1][0]); tail > 0.01 {
		t.Errorf("Expected near-silent tail, got %f", tail)
	}
	if head := math.Abs(samples[0][0]); head != 1.0 {
		t.Errorf("Expected full volume without attack, got %f", head)
	}
}

// TestSoundEffects verifies every effect streams for its declared duration
func TestSoundEffects(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	for st := SoundType(0); st < soundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			sound := GetSoundEffect(st, cfg)
			if sound == nil {
				t.Fatalf("Expected non-nil sound for %v", st)
			}

			total, peak := drain(sound)
			want := rate.N(EffectDuration(st))
			if diff := total - want; diff < -2 || diff > 2 {
				t.Errorf("Expected about %d samples, got %d", want, total)
			}
			if peak == 0 {
				t.Error("Expected audible output")
			}
			if peak > 1.0 {
				t.Errorf("Expected peak within [0, 1], got %f", peak)
			}
		})
	}
}

// TestGetSoundEffectInvalid verifies handling of invalid sound type
func TestGetSoundEffectInvalid(t *testing.T) {
	if sound := GetSoundEffect(SoundType(999), DefaultAudioConfig()); sound != nil {
		t.Error("Expected nil for invalid sound type")
	}
}

// TestSoundEffectMasterVolumeZero verifies master volume zero silences output
func TestSoundEffectMasterVolumeZero(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	total, peak := drain(CreateCoinSound(cfg))
	if total == 0 {
		t.Error("Expected silent samples to still be produced")
	}
	if peak > 0.01 {
		t.Errorf("Expected near-zero amplitude, got max %f", peak)
	}
}

// TestNewVolumeZero verifies zero volume handling
func TestNewVolumeZero(t *testing.T) {
	osc := NewOscillator(440.0, 50*time.Millisecond, WaveSine, beep.SampleRate(44100))
	vol := newVolume(osc, 0.0)

	samples := make([][2]float64, 100)
	n, ok := vol.Stream(samples)
	if !ok || n == 0 {
		t.Errorf("Expected volume effect to stream, got n=%d ok=%v", n, ok)
	}
}
