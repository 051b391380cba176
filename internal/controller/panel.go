package controller

import (
	"sync"

	"github.com/ytget/colock-player/internal/locale"
	"github.com/ytget/colock-player/internal/model"
)

// ControlPanel renders the convert, copy and play controls from the three
// session inputs. Every change re-renders all controls from scratch, so a
// control that was disabled is always restored by the next transition.
type ControlPanel struct {
	mu        sync.Mutex
	convert   Control
	copy      Control
	play      Control
	texts     Texts
	hasInput  bool
	hasResult bool
	busy      bool
}

// NewControlPanel creates a panel. Any control may be nil.
func NewControlPanel(convertCtl, copyCtl, playCtl Control, texts Texts) *ControlPanel {
	p := &ControlPanel{
		convert: convertCtl,
		copy:    copyCtl,
		play:    playCtl,
		texts:   texts,
	}
	p.Refresh()
	return p
}

// SetHasInput records whether the input field is non-empty
func (p *ControlPanel) SetHasInput(hasInput bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hasInput = hasInput
	p.render()
}

// MarkResult records that a conversion succeeded. Once set it stays set.
func (p *ControlPanel) MarkResult() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hasResult = true
	p.render()
}

// SetBusy records whether a voice cycle is in progress
func (p *ControlPanel) SetBusy(busy bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.busy = busy
	p.render()
}

// State returns the derived affordances
func (p *ControlPanel) State() model.AffordanceState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return model.Affordances(p.hasInput, p.hasResult, p.busy)
}

// Refresh re-renders all controls, e.g. after a language change
func (p *ControlPanel) Refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.render()
}

func (p *ControlPanel) render() {
	state := model.Affordances(p.hasInput, p.hasResult, p.busy)

	if p.convert != nil {
		p.convert.SetState(ControlState{
			Enabled: state.ConvertEnabled,
			Label:   p.text(locale.KeyConvert),
		})
	}
	if p.copy != nil {
		p.copy.SetState(ControlState{
			Enabled: true,
			Label:   p.text(locale.KeyCopy),
			Hidden:  state.CopyHidden,
		})
	}
	if p.play != nil {
		label := p.text(locale.KeyPlay)
		if state.PlayBusy {
			label = p.text(locale.KeyGenerating)
		}
		p.play.SetState(ControlState{
			Enabled: state.PlayEnabled,
			Label:   label,
			Hidden:  state.PlayHidden,
		})
	}
}

func (p *ControlPanel) text(key string) string {
	if p.texts == nil {
		return key
	}
	return p.texts.GetText(key)
}
