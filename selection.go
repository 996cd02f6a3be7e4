package moodboard

import "github.com/yohamta/donburi"

// State is the selection state machine's current gesture.
type State uint8

const (
	StateIdle         State = iota // no button held
	StateBoxSelecting              // rubber band following the pointer
	StateDragging                  // selected group following the pointer
)

func (s State) String() string {
	switch s {
	case StateBoxSelecting:
		return "box-selecting"
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// selectionDiff lists the entities that joined or left the selected set
// since the previous reconcile.
type selectionDiff struct {
	added   []donburi.Entity
	removed int
}

func (d selectionDiff) changed() bool {
	return len(d.added) > 0 || d.removed > 0
}

// Update advances the board by one tick. Systems run in a fixed order so
// nothing observes a stale group rect:
//
//	pointer -> commands -> delete -> press -> rubber band ->
//	reconcile (group rect) -> depth bump -> drag -> release
func (b *Board) Update(in Input) {
	if in.JustPressed && b.state != StateIdle {
		// A release was missed; finish the old gesture first.
		b.release()
	}
	if !in.Pressed && !in.JustReleased && b.state != StateIdle {
		// The button is up but no release edge arrived.
		b.release()
		b.pointer.cancel()
	}

	b.pointer.update(in)
	b.processCommands()

	if in.Delete {
		b.DeleteSelected()
	}
	if in.JustPressed {
		b.press()
	}
	if b.state == StateBoxSelecting {
		b.sizeSelectionBox()
	}

	diff := b.reconcile()
	b.bumpSoleSelected(diff)

	if b.state == StateDragging {
		b.moveSelected()
	}
	if in.JustReleased {
		b.release()
	}
	b.pointer.endTick(in)
	b.flushEvents()
}

// --- Press ---

// press routes a new press: items are hit-tested first, then the committed
// group rect, and empty canvas starts a rubber band.
func (b *Board) press() {
	cur := b.pointer.Current()
	b.collectCandidates()

	if id, ok := TopmostHit(cur, b.candidates); ok {
		b.pressItem(id, cur)
		b.state = StateDragging
		return
	}

	if r, ok := b.GroupRect(); ok && r.Committed.Contains(cur) {
		b.log.Debugf("select: press %v inside group rect, dragging", cur)
		b.state = StateDragging
		return
	}

	b.clearSelection()
	e := b.world.Create(SelectionBox)
	SelectionBox.SetValue(b.world.Entry(e), SelectionBoxData{Start: cur, End: cur})
	b.state = StateBoxSelecting
	b.log.Debugf("select: rubber band started at %v", cur)
}

// pressItem applies a direct hit. An already selected item keeps the
// selection so the group can be dragged. An unselected item joins the
// selection when the press is inside the committed group rect and
// replaces it otherwise.
func (b *Board) pressItem(id donburi.Entity, cur Vec2) {
	if b.IsSelected(id) {
		b.log.Debugf("select: press on selected %v, dragging group", id)
		return
	}
	if r, ok := b.GroupRect(); !ok || !r.Committed.Contains(cur) {
		b.clearSelection()
	}
	b.selectEntity(id)
	b.log.Debugf("select: press hit %v", id)
}

// --- Rubber band ---

// sizeSelectionBox stretches the box to the pointer and makes the selected
// set exactly the items it overlaps.
func (b *Board) sizeSelectionBox() {
	entry, ok := b.single(boxQuery, "SelectionBox")
	if !ok {
		return
	}
	box := SelectionBox.Get(entry)
	box.End = b.pointer.Current()

	b.collectCandidates()
	b.hits = AllHits(box.Rect(), b.candidates, b.hits[:0])

	inBox := make(map[donburi.Entity]struct{}, len(b.hits))
	for _, id := range b.hits {
		inBox[id] = struct{}{}
	}
	for _, c := range b.candidates {
		if _, hit := inBox[c.ID]; hit {
			b.selectEntity(c.ID)
		} else {
			b.deselectEntity(c.ID)
		}
	}
}

// --- Reactive group rect ---

// reconcile diffs the selected set against the previous call, keeps the
// group rect in step with it and notifies listeners of membership changes.
func (b *Board) reconcile() selectionDiff {
	diff := b.diffSelection()
	b.syncSelectedRect(diff)
	if diff.changed() {
		n := len(b.prevSelected)
		SelectionChanged.Publish(b.world, SelectionChangedEvent{Count: n})
		b.emit(SelectionChangedEvent{Count: n})
	}
	return diff
}

func (b *Board) diffSelection() selectionDiff {
	var diff selectionDiff
	current := make(map[donburi.Entity]struct{}, len(b.prevSelected))
	selectedQuery.Each(b.world, func(e *donburi.Entry) {
		id := e.Entity()
		current[id] = struct{}{}
		if _, had := b.prevSelected[id]; !had {
			diff.added = append(diff.added, id)
		}
	})
	for id := range b.prevSelected {
		if _, still := current[id]; !still {
			diff.removed++
		}
	}
	b.prevSelected = current
	return diff
}

// syncSelectedRect creates the group rect when the selection becomes
// non-empty, resizes it in place when membership changes, and removes it
// when the selection empties.
func (b *Board) syncSelectedRect(diff selectionDiff) {
	entry, exists := b.single(rectQuery, "SelectedRect")

	if len(b.prevSelected) == 0 {
		if exists {
			b.world.Remove(entry.Entity())
			b.log.Debugf("select: group rect removed")
		}
		return
	}

	if exists && !diff.changed() && !b.rectDirty {
		return
	}
	b.rectDirty = false

	live, rest := b.selectionBounds()
	if !exists {
		e := b.world.Create(SelectedRect)
		entry = b.world.Entry(e)
		b.log.Debugf("select: group rect created %v", live)
	}
	SelectedRect.SetValue(entry, SelectedRectData{Rect: live, Committed: rest})
}

// selectionBounds returns the union of the selected items' current boxes
// and the union of their boxes at rest.
func (b *Board) selectionBounds() (live, rest Rect) {
	first := true
	selectedQuery.Each(b.world, func(e *donburi.Entry) {
		half := Bounds.Get(e).HalfExtent
		cur := RectFromCenterHalfSize(Transform.Get(e).Position, half)
		at := RectFromCenterHalfSize(Selected.Get(e).Rest, half)
		if first {
			live, rest, first = cur, at, false
			return
		}
		live = live.Union(cur)
		rest = rest.Union(at)
	})
	return live, rest
}

// --- Depth ---

// bumpSoleSelected raises an item to the top when it is the only item and
// the only newcomer in the selection. Rubber-band sweeps never reorder.
func (b *Board) bumpSoleSelected(diff selectionDiff) {
	if b.state == StateBoxSelecting || len(diff.added) != 1 || len(b.prevSelected) != 1 {
		return
	}
	entry := b.world.Entry(diff.added[0])
	t := Transform.Get(entry)
	t.Z = b.counter.Next()
	b.log.Debugf("item: %v brought to front z=%v", diff.added[0], t.Z)
}

// --- Drag ---

// moveSelected translates the selection and its group rect by the pointer
// displacement since the press, relative to their rest positions. Nothing
// moves unless the press started inside the committed group rect.
func (b *Board) moveSelected() {
	entry, ok := b.single(rectQuery, "SelectedRect")
	if !ok {
		return
	}
	origin, pressing := b.pointer.PressOrigin()
	rect := SelectedRect.Get(entry)
	if !pressing || !rect.Committed.Contains(origin) {
		return
	}

	d := b.pointer.Displacement()
	rect.MoveTo(rect.Committed.Center().Add(d))
	selectedQuery.Each(b.world, func(e *donburi.Entry) {
		Transform.Get(e).Position = Selected.Get(e).Rest.Add(d)
	})
}

// --- Release ---

// release ends the current gesture: a drag commits the new rest positions,
// a rubber band is removed and its selection kept.
func (b *Board) release() {
	switch b.state {
	case StateDragging:
		selectedQuery.Each(b.world, func(e *donburi.Entry) {
			Selected.Get(e).Rest = Transform.Get(e).Position
		})
		if entry, ok := b.single(rectQuery, "SelectedRect"); ok {
			SelectedRect.Get(entry).Commit()
		}
	case StateBoxSelecting:
		if entry, ok := b.single(boxQuery, "SelectionBox"); ok {
			b.world.Remove(entry.Entity())
		}
		b.log.Debugf("select: rubber band ended with %d selected", len(b.prevSelected))
	}
	b.state = StateIdle
}

// --- Membership ---

func (b *Board) collectCandidates() {
	b.candidates = b.candidates[:0]
	selectableQuery.Each(b.world, func(e *donburi.Entry) {
		t := Transform.Get(e)
		b.candidates = append(b.candidates, Candidate{
			ID:         e.Entity(),
			Center:     t.Position,
			HalfExtent: Bounds.Get(e).HalfExtent,
			Z:          t.Z,
		})
	})
}

func (b *Board) selectEntity(id donburi.Entity) {
	entry := b.world.Entry(id)
	if entry.HasComponent(Selected) {
		return
	}
	rest := Transform.Get(entry).Position
	entry.AddComponent(Selected)
	Selected.SetValue(b.world.Entry(id), SelectedData{Rest: rest})
}

func (b *Board) deselectEntity(id donburi.Entity) {
	entry := b.world.Entry(id)
	if entry.HasComponent(Selected) {
		entry.RemoveComponent(Selected)
	}
}

func (b *Board) clearSelection() {
	ids := b.selectedIDs(b.scratch[:0])
	for _, id := range ids {
		b.deselectEntity(id)
	}
	b.scratch = ids[:0]
}
