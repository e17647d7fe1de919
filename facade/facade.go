// SPDX-License-Identifier: MIT

// Package facade demonstrates the Facade pattern: a HomeTheater offers two
// calls (WatchMovie, EndMovie) that drive three subsystems in the right order.
package facade

import "github.com/katalvlaran/patterns/internal/narrate"

// DVDPlayer is a subsystem.
type DVDPlayer struct{ n *narrate.Narrator }

// NewDVDPlayer narrates through n.
func NewDVDPlayer(n *narrate.Narrator) *DVDPlayer { return &DVDPlayer{n: n} }

func (d *DVDPlayer) On()   { d.n.Say("DVD Player is On") }
func (d *DVDPlayer) Play() { d.n.Say("DVD is Playing") }
func (d *DVDPlayer) Off()  { d.n.Say("DVD Player is Off") }

// Projector is a subsystem.
type Projector struct{ n *narrate.Narrator }

// NewProjector narrates through n.
func NewProjector(n *narrate.Narrator) *Projector { return &Projector{n: n} }

func (p *Projector) On()  { p.n.Say("Projector is On") }
func (p *Projector) Off() { p.n.Say("Projector is Off") }

// SetInput selects the video source.
func (p *Projector) SetInput(input string) { p.n.Sayf("Projector input set to %s", input) }

// SoundSystem is a subsystem.
type SoundSystem struct{ n *narrate.Narrator }

// NewSoundSystem narrates through n.
func NewSoundSystem(n *narrate.Narrator) *SoundSystem { return &SoundSystem{n: n} }

func (s *SoundSystem) On()  { s.n.Say("Sound System is On") }
func (s *SoundSystem) Off() { s.n.Say("Sound System is Off") }

// SetVolume sets the output level.
func (s *SoundSystem) SetVolume(level int) { s.n.Sayf("Sound System volume set to %d", level) }

// MovieVolume is the level WatchMovie sets.
const MovieVolume = 10

// HomeTheater is the facade.
type HomeTheater struct {
	n         *narrate.Narrator
	dvd       *DVDPlayer
	projector *Projector
	sound     *SoundSystem
}

// NewHomeTheater wires the facade over existing subsystems.
func NewHomeTheater(n *narrate.Narrator, dvd *DVDPlayer, projector *Projector, sound *SoundSystem) *HomeTheater {
	return &HomeTheater{n: n, dvd: dvd, projector: projector, sound: sound}
}

// NewDefaultHomeTheater creates all three subsystems on n.
func NewDefaultHomeTheater(n *narrate.Narrator) *HomeTheater {
	return NewHomeTheater(n, NewDVDPlayer(n), NewProjector(n), NewSoundSystem(n))
}

// WatchMovie powers everything up and starts playback.
func (h *HomeTheater) WatchMovie() {
	h.n.Say("Getting ready to watch a movie...")
	h.dvd.On()
	h.dvd.Play()
	h.projector.On()
	h.projector.SetInput("DVD Player")
	h.sound.On()
	h.sound.SetVolume(MovieVolume)
	h.n.Say("Movie is now playing.")
	h.n.Blank()
}

// EndMovie powers everything down.
func (h *HomeTheater) EndMovie() {
	h.n.Say("Shutting down the home theater...")
	h.dvd.Off()
	h.projector.Off()
	h.sound.Off()
	h.n.Say("Home theater is off.")
	h.n.Blank()
}
