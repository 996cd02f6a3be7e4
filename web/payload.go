// Package web exposes the canvas to a browser page when built for
// js/wasm. On other platforms Register is a no-op.
package web

import "github.com/phanxgames/moodboard"

// payload converts a board notification into a plain object for
// JavaScript callbacks.
func payload(e moodboard.OutputEvent) map[string]any {
	switch ev := e.(type) {
	case moodboard.SelectionChangedEvent:
		return map[string]any{"type": "selectionChanged", "count": ev.Count}
	case moodboard.ItemAddedEvent:
		return map[string]any{"type": "itemAdded", "kind": ev.Kind.String(), "id": uint64(ev.ID)}
	case moodboard.ItemsDeletedEvent:
		return map[string]any{"type": "itemsDeleted", "count": ev.Count}
	}
	return map[string]any{"type": "unknown"}
}

// parseAddItem validates the arguments of moodboard.addItem.
func parseAddItem(kind, content string) (moodboard.AddItemEvent, error) {
	k, err := moodboard.ParseItemKind(kind)
	if err != nil {
		return moodboard.AddItemEvent{}, err
	}
	if k == moodboard.ItemSwatch {
		if _, err := moodboard.ParseHexColor(content); err != nil {
			return moodboard.AddItemEvent{}, err
		}
	}
	return moodboard.AddItemEvent{Kind: k, Content: content}, nil
}
