// Package moodboard is the interaction core of an infinite moodboard
// canvas: items, hit-testing, the selection state machine, rubber-band
// selection, the group rect and group drag.
//
// All state lives in a [donburi] world owned by a [Board]. Each tick the
// caller passes one [Input] sample to [Board.Update]; rendering and device
// handling live in the canvas subpackage.
//
// # Quick start
//
//	b := moodboard.NewBoard()
//	note, _ := b.AddItemAt(moodboard.ItemPostIt, "idea", moodboard.Vec2{})
//
//	// Press on the note, drag it 50 units right, release.
//	b.Update(moodboard.Input{Cursor: moodboard.Vec2{}, Pressed: true, JustPressed: true})
//	b.Update(moodboard.Input{Cursor: moodboard.Vec2{X: 50}, Pressed: true})
//	b.Update(moodboard.Input{Cursor: moodboard.Vec2{X: 50}, JustReleased: true})
//
//	tr, _ := b.ItemTransform(note) // tr.Position == Vec2{50, 0}
//
// # Selection
//
// A press first hit-tests every selectable item and takes the one with the
// highest Z. Pressing an unselected item replaces the selection, unless
// the press lands inside the committed group rect, in which case the item
// joins it. Pressing a selected item, or empty space inside the group
// rect, starts a group drag. Pressing anywhere else clears the selection
// and starts a rubber band; while it is held the selected set is exactly
// the items the band overlaps with positive area.
//
// When one item alone is newly selected by a press it is raised above all
// others. Rubber-band selection never changes depth.
//
// # Group rect
//
// While anything is selected a single group-rect entity bounds the
// selection. It is created, resized in place, and removed as membership
// changes, always on the same tick. Rect follows a drag; Committed is the
// rest state, updated on release.
//
// # Events
//
// A [Duplex] pairs two bounded queues with a UI shell: the shell sends
// [AddItemEvent], [ThemeEvent] and [ResizeEvent]; the board answers with
// [SelectionChangedEvent], [ItemAddedEvent] and [ItemsDeletedEvent]. The
// same notifications are published in-world on [SelectionChanged],
// [ItemAdded], [ThemeChanged] and [Resized] for donburi subscribers.
package moodboard
