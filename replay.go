package batch

import "log/slog"

// Draw replays the accumulated vertex stream onto target in a single
// DrawPrimitives call. It implements Drawable.
//
// The committed texture and blend mode replace those in states; the
// transform, stencil settings and shader of states pass through. For the
// duration of the call the target's view is switched to the batch view (or
// to the target's default view if the batch has none) and restored
// afterwards. Nothing else may change the target's view concurrently.
//
// Drawing a batch that has nothing in it is a no-op.
func (b *Batch) Draw(target RenderTarget, states RenderStates) {
	if b.state == cycleEmpty {
		return
	}

	saved := target.View()
	if b.viewUsed {
		target.SetView(b.usedView)
	} else {
		target.SetView(target.DefaultView())
	}

	states.Texture = b.commit.textureRef
	states.BlendMode = b.commit.blend

	Logger().Debug("batch: replay",
		slog.String("category", b.commit.category.String()),
		slog.Int("vertices", len(b.vertices)))
	target.DrawPrimitives(b.vertices, b.commit.category, states)

	target.SetView(saved)
}
