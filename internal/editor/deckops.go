package editor

import (
	"context"

	"typecraft/internal/artifact"
	"typecraft/internal/deck"
	"typecraft/internal/template"
)

// deckMutate loads the pitch-deck draft, applies a deck operation, and writes
// the slide list back into the answers map.
func (c *Controller) deckMutate(ctx context.Context, fn func(d deck.Deck) deck.Deck) (State, bool) {
	return c.mutate(ctx, artifact.PitchDeck, func(_ template.Template, st *State) {
		d := deck.FromAnswers(st.Answers).Ensure()
		st.Answers = fn(d).ToAnswers(st.Answers)
	})
}

// AddSlide inserts a new slide after the referenced one and selects it.
func (c *Controller) AddSlide(ctx context.Context, afterID string) (State, bool) {
	return c.deckMutate(ctx, func(d deck.Deck) deck.Deck { return d.Add(afterID) })
}

// RemoveSlide drops a slide; removing the only slide is a no-op.
func (c *Controller) RemoveSlide(ctx context.Context, id string) (State, bool) {
	return c.deckMutate(ctx, func(d deck.Deck) deck.Deck { return d.Remove(id) })
}

// MoveSlide swaps a slide with its neighbor (dir -1 up, +1 down).
func (c *Controller) MoveSlide(ctx context.Context, id string, dir int) (State, bool) {
	return c.deckMutate(ctx, func(d deck.Deck) deck.Deck { return d.Move(id, dir) })
}

// SelectSlide moves the cursor.
func (c *Controller) SelectSlide(ctx context.Context, id string) (State, bool) {
	return c.deckMutate(ctx, func(d deck.Deck) deck.Deck { return d.Select(id) })
}

// PatchSlide merges a partial data update. Bullets arrive raw from the
// textarea and keep their blank lines until CommitBullets.
func (c *Controller) PatchSlide(ctx context.Context, id string, p deck.Patch) (State, bool) {
	return c.deckMutate(ctx, func(d deck.Deck) deck.Deck { return d.ApplyPatch(id, p) })
}

// RetypeSlide changes a slide's type tag, keeping its data.
func (c *Controller) RetypeSlide(ctx context.Context, id string, t deck.Type) (State, bool) {
	return c.deckMutate(ctx, func(d deck.Deck) deck.Deck { return d.Retype(id, t) })
}

// CommitBullets normalizes one slide's bullets after raw editing ends.
func (c *Controller) CommitBullets(ctx context.Context, id string) (State, bool) {
	return c.deckMutate(ctx, func(d deck.Deck) deck.Deck { return d.CommitBullets(id) })
}

// SetLogo stores the deck logo URL.
func (c *Controller) SetLogo(ctx context.Context, url string) (State, bool) {
	return c.deckMutate(ctx, func(d deck.Deck) deck.Deck {
		d.LogoURL = url
		return d
	})
}
