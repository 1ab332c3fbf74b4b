package systems

import (
	"github.com/automoto/gravityman/components"
	"github.com/automoto/gravityman/shared/gamemath"
	"github.com/automoto/gravityman/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var itemQuery = donburi.NewQuery(filter.Contains(components.Item))

// UpdateInteractions runs the player's event-only overlap checks against
// the settled positions of this tick. A hazard or enemy hit resets the
// attempt and ends the step; an open goal completes the level; items are
// collected otherwise.
func UpdateInteractions(w donburi.World) {
	playerEntry, ok := GetPlayer(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	body := obj.Rect()

	if !player.Invulnerable() && len(touching(obj.Object, body, tags.ResolvHazard, tags.ResolvEnemy)) > 0 {
		ResetAttempt(w)
		return
	}

	if goalEntry, ok := components.Goal.First(w); ok {
		goal := components.Goal.Get(goalEntry)
		if goal.Open && gamemath.Overlaps(body, components.Object.Get(goalEntry).Rect()) {
			CompleteLevel(w)
			return
		}
	}

	session := GetOrCreateSession(w)
	total := itemQuery.Count(w)
	for _, e := range touching(obj.Object, body, tags.ResolvItem) {
		if !e.HasComponent(components.Item) {
			continue
		}
		item := components.Item.Get(e)
		if item.Collected {
			continue
		}
		item.Collected = true
		if session.Collected < total {
			session.Collected++
		}
		Emit(w, components.EventItemCollected)
	}
}

// touching returns the entries whose objects carry one of the tags and
// strictly overlap body. resolv registers an object in the cells up to
// X+W-1, so a sub-pixel overlap can sit one cell outside both objects'
// ranges; the scan is widened by a cell on every side and the exact test is
// gamemath.Overlaps.
func touching(obj *resolv.Object, body gamemath.Rect, tags ...string) []*donburi.Entry {
	if obj == nil || obj.Space == nil {
		return nil
	}
	minX, minY, maxX, maxY := obj.BoundsToSpace(0, 0)

	var hits []*donburi.Entry
	seen := map[*resolv.Object]bool{obj: true}
	for cy := minY - 1; cy <= maxY+1; cy++ {
		for cx := minX - 1; cx <= maxX+1; cx++ {
			cell := obj.Space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, other := range cell.Objects {
				if seen[other] {
					continue
				}
				seen[other] = true
				if !other.HasTags(tags...) {
					continue
				}
				if !gamemath.Overlaps(body, gamemath.NewRect(other.X, other.Y, other.W, other.H)) {
					continue
				}
				entry, ok := other.Data.(*donburi.Entry)
				if !ok || !entry.Valid() {
					continue
				}
				hits = append(hits, entry)
			}
		}
	}
	return hits
}

// CompleteLevel enters the levelComplete dwell.
func CompleteLevel(w donburi.World) {
	session := GetOrCreateSession(w)
	if session.Mode != components.ModePlaying {
		return
	}
	session.Mode = components.ModeLevelComplete
	session.ModeTimer = levelCompleteFrames()
	Emit(w, components.EventLevelComplete)
}
