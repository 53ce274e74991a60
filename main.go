// Package main provides a demo host for the annotation engine: an audio
// interval annotator over a synthetic waveform.
package main

import (
	"log"
	"math"
	"os"

	"annotator/internal/annotation"
	"annotator/internal/interaction"
	"annotator/internal/media"
	"annotator/internal/session"
	"annotator/internal/version"
	"annotator/internal/waveform"
	"annotator/ui/prefs"
	"annotator/ui/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const appTitle = "Annotator"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	appPrefs := prefs.Load()

	fyneApp := app.New()
	fyneApp.Settings().SetTheme(&annotatorTheme{})
	win := fyneApp.NewWindow(appTitle)

	tags := []annotation.Tag{
		{Name: "m", Label: "Flute", Color: "$blue"},
		{Name: "f", Label: "Drum", Color: "$brown"},
	}

	cfg := interaction.Config{
		Kind:            annotation.KindInterval,
		PixelsPerSecond: appPrefs.Float(prefs.KeyPixelsPerSecond, 100),
		MinSize:         appPrefs.Float(prefs.KeyMinShapeSize, 5),
	}
	sess := session.New(cfg, tags, 240)
	sess.Source = media.FromSamples(demoSamples(), 44100)

	surf := surface.New(sess)

	status := widget.NewLabel("")
	surf.OnStatus(status.SetText)
	sess.OnCommit(func() {
		log.Printf("collection changed: %d shapes", sess.Collection.Len())
	})

	tagButtons := make([]fyne.CanvasObject, 0, len(tags)+2)
	for _, t := range tags {
		name := t.Name
		tagButtons = append(tagButtons, widget.NewButton(t.Label, func() {
			sess.SetActiveTag(name)
		}))
	}
	tagButtons = append(tagButtons,
		widget.NewButton("Remove Selected", func() {
			sess.Collection.RemoveFocused()
		}),
		widget.NewButton("Remove All", func() {
			sess.Collection.RemoveAll()
		}),
	)

	win.SetContent(container.NewBorder(
		container.NewHBox(tagButtons...),
		status,
		nil, nil,
		surf,
	))
	win.Resize(fyne.NewSize(900, 380))

	// An annotation file given on the command line is loaded into the
	// session and saved back on close.
	if len(os.Args) > 1 {
		path := os.Args[1]
		if err := sess.Load(path); err != nil {
			log.Printf("Failed to load annotations %s: %v", path, err)
		}
		win.SetOnClosed(func() {
			if err := sess.Save(path); err != nil {
				log.Printf("Failed to save annotations: %v", err)
			}
		})
	}

	win.ShowAndRun()
}

// demoSamples synthesizes a few seconds of audio so the waveform backdrop
// has something to show without any decoder in the loop.
func demoSamples() []float64 {
	const (
		rate    = 44100
		seconds = 8
	)
	samples := make([]float64, rate*seconds)
	for i := range samples {
		t := float64(i) / rate
		samples[i] = 0.6*math.Sin(2*math.Pi*220*t) +
			0.3*math.Sin(2*math.Pi*440*t)*math.Sin(2*math.Pi*0.5*t)
	}
	waveform.Normalize(samples)
	return samples
}
