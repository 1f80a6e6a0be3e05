// Package editor drives the three-step editing wizard (layout, fill, share)
// on top of the template registry and the render layer. All state is a Draft
// persisted through a Store; the controller itself is stateless, so any API
// replica can serve any request.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"typecraft/internal/artifact"
	"typecraft/internal/deck"
	"typecraft/internal/render"
	"typecraft/internal/template"
)

// Wizard steps. Forward from StepLayout requires a chosen layout; everything
// else moves freely. Backward stops at StepLayout.
const (
	StepLayout = 1
	StepFill   = 2
	StepShare  = 3
)

// Draft is the persisted editing state for one artifact.
type Draft struct {
	Artifact  artifact.ID      `json:"artifact"`
	Layout    string           `json:"layout,omitempty"`
	Answers   template.Answers `json:"answers"`
	Theme     template.Theme   `json:"theme"`
	SavedSlug string           `json:"savedSlug,omitempty"`
	Step      int              `json:"step,omitempty"`
}

// State is the resolved editor view: the draft merged over template defaults
// plus the derived preview HTML.
type State struct {
	Artifact  artifact.ID       `json:"artifact"`
	Template  template.Template `json:"template"`
	Step      int               `json:"step"`
	Layout    string            `json:"layout"`
	Theme     template.Theme    `json:"theme"`
	Answers   template.Answers  `json:"answers"`
	SavedSlug string            `json:"savedSlug,omitempty"`
	HTML      string            `json:"html"`
}

// Controller owns draft lifecycle for every artifact. Store errors never fail
// an edit: they are logged and the in-flight state is returned anyway.
type Controller struct {
	store     Store
	namespace string
	log       *slog.Logger
}

func NewController(store Store, namespace string, log *slog.Logger) *Controller {
	if namespace == "" {
		namespace = "typecraft"
	}
	if log == nil {
		log = slog.Default()
	}
	return &Controller{store: store, namespace: namespace, log: log}
}

func (c *Controller) draftKey(id artifact.ID) string {
	return fmt.Sprintf("%s:draft:%s", c.namespace, id)
}

func (c *Controller) panelKey(id artifact.ID, name string) string {
	return fmt.Sprintf("%s_editor_panel:%s:%s", c.namespace, id, name)
}

// loadDraft reads the persisted draft; a missing key, a store error, or
// malformed JSON all read as "no draft".
func (c *Controller) loadDraft(ctx context.Context, id artifact.ID) (Draft, bool) {
	raw, ok, err := c.store.Get(ctx, c.draftKey(id))
	if err != nil {
		c.log.Warn("draft load failed", "artifact", id, "error", err)
		return Draft{}, false
	}
	if !ok {
		return Draft{}, false
	}
	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		c.log.Warn("draft unmarshal failed", "artifact", id, "error", err)
		return Draft{}, false
	}
	return d, true
}

// saveDraft resyncs the full draft after a mutation. Failures are swallowed.
func (c *Controller) saveDraft(ctx context.Context, d Draft) {
	raw, err := json.Marshal(d)
	if err != nil {
		c.log.Warn("draft marshal failed", "artifact", d.Artifact, "error", err)
		return
	}
	if err := c.store.Set(ctx, c.draftKey(d.Artifact), string(raw)); err != nil {
		c.log.Warn("draft save failed", "artifact", d.Artifact, "error", err)
	}
}

// resolve merges a draft over template defaults and derives the preview HTML.
func (c *Controller) resolve(tpl template.Template, d Draft) State {
	st := State{
		Artifact: tpl.Artifact,
		Template: tpl,
		Step:     d.Step,
		Layout:   tpl.DefaultLayoutID,
		Theme:    tpl.DefaultTheme,
		Answers:  template.Answers{},
	}
	if st.Step < StepLayout || st.Step > StepShare {
		st.Step = StepLayout
	}
	if d.Layout != "" && tpl.HasLayout(d.Layout) {
		st.Layout = d.Layout
	}
	st.Theme = tpl.DefaultTheme.Merge(d.Theme)
	if d.Answers != nil {
		st.Answers = d.Answers
	}
	st.SavedSlug = d.SavedSlug

	if tpl.Artifact == artifact.PitchDeck {
		st.Answers = deck.FromAnswers(st.Answers).Ensure().ToAnswers(st.Answers)
	}

	st.HTML = render.Render(tpl.Artifact, st.Answers, st.Theme, st.Layout)
	return st
}

func (c *Controller) toDraft(st State) Draft {
	return Draft{
		Artifact:  st.Artifact,
		Layout:    st.Layout,
		Answers:   st.Answers,
		Theme:     st.Theme,
		SavedSlug: st.SavedSlug,
		Step:      st.Step,
	}
}

// Open loads the editor state for an artifact. The bool reports whether the
// artifact exists in the registry.
func (c *Controller) Open(ctx context.Context, id artifact.ID) (State, bool) {
	tpl, ok := template.Get(id)
	if !ok {
		return State{}, false
	}
	d, _ := c.loadDraft(ctx, id)
	st := c.resolve(tpl, d)
	// Starter slides may have been seeded; keep the stored draft in step.
	c.saveDraft(ctx, c.toDraft(st))
	return st, true
}

// mutate applies fn to the current state and resyncs the draft.
func (c *Controller) mutate(ctx context.Context, id artifact.ID, fn func(tpl template.Template, st *State)) (State, bool) {
	tpl, ok := template.Get(id)
	if !ok {
		return State{}, false
	}
	d, _ := c.loadDraft(ctx, id)
	st := c.resolve(tpl, d)
	fn(tpl, &st)
	st.HTML = render.Render(tpl.Artifact, st.Answers, st.Theme, st.Layout)
	c.saveDraft(ctx, c.toDraft(st))
	return st, true
}

// SetLayout picks a layout; unknown layout ids are ignored.
func (c *Controller) SetLayout(ctx context.Context, id artifact.ID, layoutID string) (State, bool) {
	return c.mutate(ctx, id, func(tpl template.Template, st *State) {
		if tpl.HasLayout(layoutID) {
			st.Layout = layoutID
		}
	})
}

// SetTheme overlays the given tokens on the current theme.
func (c *Controller) SetTheme(ctx context.Context, id artifact.ID, th template.Theme) (State, bool) {
	return c.mutate(ctx, id, func(_ template.Template, st *State) {
		st.Theme = st.Theme.Merge(th)
	})
}

// SetAnswers replaces answer values by key. Nil values delete the key.
func (c *Controller) SetAnswers(ctx context.Context, id artifact.ID, patch template.Answers) (State, bool) {
	return c.mutate(ctx, id, func(_ template.Template, st *State) {
		next := st.Answers.Clone()
		for k, v := range patch {
			if v == nil {
				delete(next, k)
				continue
			}
			next[k] = v
		}
		st.Answers = next
	})
}

// SetSavedSlug records the share slug returned by a save.
func (c *Controller) SetSavedSlug(ctx context.Context, id artifact.ID, slug string) (State, bool) {
	return c.mutate(ctx, id, func(_ template.Template, st *State) {
		st.SavedSlug = slug
	})
}

// Next advances the wizard. Leaving the layout step requires a layout.
func (c *Controller) Next(ctx context.Context, id artifact.ID) (State, bool) {
	return c.mutate(ctx, id, func(_ template.Template, st *State) {
		if st.Step == StepLayout && st.Layout == "" {
			return
		}
		if st.Step < StepShare {
			st.Step++
		}
	})
}

// Prev steps backward, stopping at the layout step.
func (c *Controller) Prev(ctx context.Context, id artifact.ID) (State, bool) {
	return c.mutate(ctx, id, func(_ template.Template, st *State) {
		if st.Step > StepLayout {
			st.Step--
		}
	})
}

// Reset clears the stored draft and restores template defaults.
func (c *Controller) Reset(ctx context.Context, id artifact.ID) (State, bool) {
	tpl, ok := template.Get(id)
	if !ok {
		return State{}, false
	}
	if err := c.store.Delete(ctx, c.draftKey(id)); err != nil {
		c.log.Warn("draft delete failed", "artifact", id, "error", err)
	}
	st := c.resolve(tpl, Draft{})
	return st, true
}

// PanelOpen reads a persisted panel flag; missing flags report the default.
func (c *Controller) PanelOpen(ctx context.Context, id artifact.ID, name string, def bool) bool {
	raw, ok, err := c.store.Get(ctx, c.panelKey(id, name))
	if err != nil {
		c.log.Warn("panel flag load failed", "artifact", id, "panel", name, "error", err)
		return def
	}
	if !ok {
		return def
	}
	return raw == "1"
}

// SetPanelOpen persists a panel flag as "1"/"0".
func (c *Controller) SetPanelOpen(ctx context.Context, id artifact.ID, name string, open bool) {
	v := "0"
	if open {
		v = "1"
	}
	if err := c.store.Set(ctx, c.panelKey(id, name), v); err != nil {
		c.log.Warn("panel flag save failed", "artifact", id, "panel", name, "error", err)
	}
}
