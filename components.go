package moodboard

import "github.com/yohamta/donburi"

// TransformData is an item's world position and draw depth. Z orders drawing
// and breaks hit-test ties; it plays no part in geometry.
type TransformData struct {
	Position Vec2
	Z        float64
}

// BoundsData is the axis-aligned half-extent of an item around its position.
type BoundsData struct {
	HalfExtent Vec2
}

// ItemData describes what an item shows.
type ItemData struct {
	Kind    ItemKind
	Content string // note/text body, image path, or swatch hex label
	Color   Color  // swatch color; unused by other kinds
}

// SelectedData marks an entity as selected. Rest is the position the item
// had at the last commit point and is the origin drags translate from.
type SelectedData struct {
	Rest Vec2
}

// SelectionBoxData is the rubber-band rectangle spanned from Start to End.
type SelectionBoxData struct {
	Start, End Vec2
}

// Rect returns the normalized rectangle spanned by the box.
func (b SelectionBoxData) Rect() Rect {
	return RectFromCorners(b.Start, b.End)
}

// SelectedRectData is the bounding rectangle around every selected item.
// Rect follows the live drag; Committed is the rest state captured at the
// start of each drag gesture.
type SelectedRectData struct {
	Rect      Rect
	Committed Rect
}

// MoveTo re-centers the live rect on center.
func (s *SelectedRectData) MoveTo(center Vec2) {
	s.Rect = s.Rect.MoveTo(center)
}

// Commit makes the live rect the new rest state.
func (s *SelectedRectData) Commit() {
	s.Committed = s.Rect
}

// Contains reports whether p lies inside the live rect.
func (s *SelectedRectData) Contains(p Vec2) bool {
	return s.Rect.Contains(p)
}

// Components registered with the board's donburi world.
var (
	Transform    = donburi.NewComponentType[TransformData]()
	Bounds       = donburi.NewComponentType[BoundsData]()
	Item         = donburi.NewComponentType[ItemData]()
	Selectable   = donburi.NewTag()
	Selected     = donburi.NewComponentType[SelectedData]()
	SelectionBox = donburi.NewComponentType[SelectionBoxData]()
	SelectedRect = donburi.NewComponentType[SelectedRectData]()
)
