package web

import (
	"errors"
	"testing"

	"github.com/phanxgames/moodboard"
)

type otherEvent struct{ moodboard.OutputEvent }

func TestPayload(t *testing.T) {
	tests := []struct {
		name  string
		in    moodboard.OutputEvent
		typ   string
		field string
		want  any
	}{
		{"selection", moodboard.SelectionChangedEvent{Count: 3}, "selectionChanged", "count", 3},
		{"added", moodboard.ItemAddedEvent{Kind: moodboard.ItemSwatch}, "itemAdded", "kind", "swatch"},
		{"deleted", moodboard.ItemsDeletedEvent{Count: 2}, "itemsDeleted", "count", 2},
		{"unknown", otherEvent{}, "unknown", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := payload(tt.in)
			if p["type"] != tt.typ {
				t.Errorf("type = %v, want %v", p["type"], tt.typ)
			}
			if tt.field != "" && p[tt.field] != tt.want {
				t.Errorf("%s = %v, want %v", tt.field, p[tt.field], tt.want)
			}
		})
	}
}

func TestParseAddItem(t *testing.T) {
	ev, err := parseAddItem("post-it", "remember")
	if err != nil || ev.Kind != moodboard.ItemPostIt || ev.Content != "remember" {
		t.Errorf("parseAddItem = %+v, %v", ev, err)
	}
	if _, err := parseAddItem("sticker", ""); !errors.Is(err, moodboard.ErrUnknownItemKind) {
		t.Errorf("err = %v, want ErrUnknownItemKind", err)
	}
	if _, err := parseAddItem("swatch", "blue"); err == nil {
		t.Error("bad swatch color should fail")
	}
}
