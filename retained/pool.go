package retained

import "sync"

// ============================================================================
// Widget Slice Pooling
// ============================================================================
//
// Draw and hit-test walk a snapshot of each child list, because a callback
// may reorder siblings (activating a window moves it to the top) while the
// walk is in progress. Snapshots come from a pool so a render pass does not
// allocate per parent.
// snapshotDrawOrder and snapshotHitOrder hand one out; the walker gives it
// back with releaseWidgetSlice once the siblings are visited.

// widgetSlicePool holds sibling buffers between render and hit-test passes.
var widgetSlicePool = sync.Pool{
	New: func() interface{} {
		// Small displays rarely have more than a handful of siblings
		return make([]*Widget, 0, 8)
	},
}

// acquireWidgetSlice returns a sibling buffer of length n. Lists longer than
// a pooled buffer get a fresh one sized for some growth.
func acquireWidgetSlice(n int) []*Widget {
	slice := widgetSlicePool.Get().([]*Widget)

	if cap(slice) < n {
		widgetSlicePool.Put(slice[:0])
		return make([]*Widget, n, n*2)
	}

	return slice[:n]
}

// releaseWidgetSlice ends a snapshot. Buffers grown past 64 siblings are
// left to the collector.
func releaseWidgetSlice(slice []*Widget) {
	if slice == nil {
		return
	}

	// Drop references so pooled slices don't keep removed widgets alive
	for i := range slice {
		slice[i] = nil
	}

	if cap(slice) <= 64 {
		widgetSlicePool.Put(slice[:0])
	}
}

// snapshotDrawOrder copies w's children back to front into a pooled slice.
func snapshotDrawOrder(w *Widget) []*Widget {
	out := acquireWidgetSlice(len(w.children))
	copy(out, w.children)
	return out
}

// snapshotHitOrder copies w's children front to back into a pooled slice.
func snapshotHitOrder(w *Widget) []*Widget {
	n := len(w.children)
	out := acquireWidgetSlice(n)
	for i, c := range w.children {
		out[n-1-i] = c
	}
	return out
}
