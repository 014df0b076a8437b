package notify

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	bellRate      beep.SampleRate = 44100
	bellFrequency                 = 880
	bellDuration                  = 400 * time.Millisecond
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		bufferSize := 10

		speakerErr = speaker.Init(
			bellRate,
			bellRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	return speakerErr
}

// bellStream returns a sine tone that fades in volume and lasts d.
func bellStream(d time.Duration) (beep.Streamer, error) {
	tone, err := generators.SineTone(bellRate, bellFrequency)
	if err != nil {
		return nil, err
	}

	quieter := &effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   -2,
	}

	return beep.Take(bellRate.N(d), quieter), nil
}

// PlayBell plays a short tone and blocks until it has finished.
func PlayBell() error {
	err := initSpeaker()
	if err != nil {
		return err
	}

	stream, err := bellStream(bellDuration)
	if err != nil {
		return err
	}

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	return nil
}
