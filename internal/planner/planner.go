// Package planner owns the roster state: which characters are tracked, the
// goal record for each, and the single selection. All mutation goes through
// the named operations here; each applies its invariant, bumps the revision
// counter and writes the full state through to the snapshot store. Derived
// values (per-goal costs, roster totals) are pure reads recomputed on
// demand.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/teyvatops/ascend/internal/gamedata"
	"github.com/teyvatops/ascend/internal/goals"
	"github.com/teyvatops/ascend/internal/store"
)

// Dimension selects which level pair a SetLevel write addresses.
type Dimension int

const (
	DimensionCharacter Dimension = iota
	DimensionWeapon
)

// keepSnapshots bounds the persisted history; older rows are pruned on
// every write.
const keepSnapshots = 20

// Planner is the process-wide goal store. It is not safe for concurrent
// use; the application runs all mutations on a single goroutine.
type Planner struct {
	provider  gamedata.Provider
	snapshots store.SnapshotRepo // nil disables persistence

	owned    []string
	ownedSet map[string]bool
	records  map[string]*goals.Record
	selected string
	revision int64

	// deferred batches writes: commits mark state dirty and Flush performs
	// the actual snapshot. The durability contract is unchanged, only the
	// write frequency.
	deferred      bool
	savedRevision int64
}

// New creates an empty Planner. Pass a nil repo for an ephemeral store.
func New(provider gamedata.Provider, snapshots store.SnapshotRepo) *Planner {
	return &Planner{
		provider:  provider,
		snapshots: snapshots,
		ownedSet:  make(map[string]bool),
		records:   make(map[string]*goals.Record),
	}
}

// Load restores state from the latest snapshot, if one exists. A missing or
// unreadable snapshot leaves the planner empty rather than failing: the
// snapshot was our own write, so damage here means a corrupted database,
// and starting fresh is the only useful degradation.
func (p *Planner) Load(ctx context.Context) error {
	if p.snapshots == nil {
		return nil
	}
	snap, err := p.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load latest snapshot: %w", err)
	}
	if snap == nil {
		return nil
	}

	var doc Document
	if err := json.Unmarshal(snap.Data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "warning: snapshot %s is unreadable, starting fresh: %v\n", snap.ID, err)
		return nil
	}
	p.replace(doc)
	p.revision = snap.Revision
	p.savedRevision = snap.Revision
	return nil
}

// Revision returns the monotonic mutation counter.
func (p *Planner) Revision() int64 { return p.revision }

// Owned returns the owned character ids in insertion order.
func (p *Planner) Owned() []string {
	out := make([]string, len(p.owned))
	copy(out, p.owned)
	return out
}

// IsOwned reports whether id is in the owned set.
func (p *Planner) IsOwned(id string) bool { return p.ownedSet[id] }

// Selected returns the selected character id, or "" if none.
func (p *Planner) Selected() string { return p.selected }

// Goal returns the goal record for id, or nil if none exists. The returned
// record must only be mutated through planner operations.
func (p *Planner) Goal(id string) *goals.Record { return p.records[id] }

// GoalIDs returns every id that has a goal record, sorted.
func (p *Planner) GoalIDs() []string {
	ids := make([]string, 0, len(p.records))
	for id := range p.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AddCharacter adds a known character to the owned set. No-op when already
// owned or unknown.
func (p *Planner) AddCharacter(id string) {
	if p.ownedSet[id] || !p.provider.IsCharacter(id) {
		return
	}
	p.owned = append(p.owned, id)
	p.ownedSet[id] = true
	p.commit()
}

// RemoveCharacter drops a character from the owned set and clears the
// selection if it pointed at it. The goal record is left behind; orphaned
// records are inert until an import replaces the whole state.
func (p *Planner) RemoveCharacter(id string) {
	if !p.ownedSet[id] {
		return
	}
	delete(p.ownedSet, id)
	for i, o := range p.owned {
		if o == id {
			p.owned = append(p.owned[:i], p.owned[i+1:]...)
			break
		}
	}
	if p.selected == id {
		p.selected = ""
	}
	p.commit()
}

// Select marks an owned character as selected and ensures its goal record
// exists. Selecting a character that is not owned is a no-op.
func (p *Planner) Select(id string) {
	if !p.ownedSet[id] || p.selected == id {
		return
	}
	p.selected = id
	p.ensure(id)
	p.commit()
}

// Deselect clears the selection.
func (p *Planner) Deselect() {
	if p.selected == "" {
		return
	}
	p.selected = ""
	p.commit()
}

// Ensure creates a default goal record for a known character if absent.
func (p *Planner) Ensure(id string) {
	if p.records[id] != nil || !p.provider.IsCharacter(id) {
		return
	}
	p.ensure(id)
	p.commit()
}

func (p *Planner) ensure(id string) {
	if p.records[id] == nil {
		p.records[id] = goals.New()
	}
}

// SetLevel writes one half of the character or weapon level pair on a goal
// record, clamping off-milestone values and advancing the target past the
// current level where the dimension requires it.
func (p *Planner) SetLevel(id string, dim Dimension, field goals.LevelField, v int) {
	r := p.records[id]
	if r == nil {
		return
	}
	switch dim {
	case DimensionCharacter:
		r.SetCharacterLevel(field, v)
	case DimensionWeapon:
		r.SetWeaponLevel(field, v)
	default:
		return
	}
	p.commit()
}

// SetWeapon changes the planned weapon on a goal record. Unknown weapon ids
// are rejected; an empty id clears the weapon.
func (p *Planner) SetWeapon(id, weaponID string) {
	r := p.records[id]
	if r == nil {
		return
	}
	if weaponID != "" && !p.provider.IsWeapon(weaponID) {
		return
	}
	r.SetWeapon(weaponID)
	p.commit()
}

// SetArtifactLevel writes one half of an artifact's level pair.
func (p *Planner) SetArtifactLevel(id string, slot goals.ArtifactSlot, field goals.LevelField, v int) {
	if r := p.records[id]; r != nil {
		r.SetArtifactLevel(slot, field, v)
		p.commit()
	}
}

// SetArtifactMainStat writes an artifact's main stat; locked slots ignore
// the write.
func (p *Planner) SetArtifactMainStat(id string, slot goals.ArtifactSlot, stat string) {
	if r := p.records[id]; r != nil {
		r.SetArtifactMainStat(slot, stat)
		p.commit()
	}
}

// ToggleSubstat adds or removes a desired substat on an artifact.
func (p *Planner) ToggleSubstat(id string, slot goals.ArtifactSlot, stat string) {
	if r := p.records[id]; r != nil {
		r.ToggleSubstat(slot, stat)
		p.commit()
	}
}

// SetTargetSubstatCount writes an artifact's target substat count.
func (p *Planner) SetTargetSubstatCount(id string, slot goals.ArtifactSlot, n int) {
	if r := p.records[id]; r != nil {
		r.SetTargetSubstatCount(slot, n)
		p.commit()
	}
}

// SetTalentLevel writes one half of a talent's level pair.
func (p *Planner) SetTalentLevel(id string, key goals.TalentKey, field goals.LevelField, v int) {
	if r := p.records[id]; r != nil {
		r.SetTalentLevel(key, field, v)
		p.commit()
	}
}

// replace swaps in a whole new roster state. Locked artifact main stats are
// forced regardless of what the document carried.
func (p *Planner) replace(doc Document) {
	p.owned = nil
	p.ownedSet = make(map[string]bool, len(doc.OwnedCharacters))
	for _, id := range doc.OwnedCharacters {
		if p.ownedSet[id] {
			continue
		}
		p.owned = append(p.owned, id)
		p.ownedSet[id] = true
	}

	p.records = make(map[string]*goals.Record, len(doc.CharacterGoals))
	for id, r := range doc.CharacterGoals {
		clone := *r
		clone.Artifacts = cloneArtifacts(r.Artifacts)
		for i := range clone.Artifacts {
			slot := goals.ArtifactSlot(i)
			clone.Artifacts[i].Slot = goals.SlotName(slot)
			if locked, ok := goals.LockedMainStat(slot); ok {
				clone.Artifacts[i].MainStat = locked
			}
		}
		p.records[id] = &clone
	}

	p.selected = ""
	if doc.SelectedCharacter != nil && p.ownedSet[*doc.SelectedCharacter] {
		p.selected = *doc.SelectedCharacter
	}
}

// SetDeferred switches between write-through (every mutation snapshots
// immediately) and batched persistence (mutations accumulate until Flush).
// Turning deferral off flushes any pending write.
func (p *Planner) SetDeferred(deferred bool) {
	p.deferred = deferred
	if !deferred {
		p.Flush()
	}
}

// Flush writes a snapshot if any mutation happened since the last write.
func (p *Planner) Flush() {
	if p.revision != p.savedRevision {
		p.persist()
	}
}

// commit bumps the revision and writes the full state through to the
// snapshot store. A write failure is logged and the in-memory state stays
// authoritative for the session.
func (p *Planner) commit() {
	p.revision++
	if p.deferred {
		return
	}
	p.persist()
}

func (p *Planner) persist() {
	p.savedRevision = p.revision
	if p.snapshots == nil {
		return
	}

	data, err := json.Marshal(p.Export())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: serialize roster state: %v\n", err)
		return
	}

	ctx := context.Background()
	err = p.snapshots.Save(ctx, &store.Snapshot{Revision: p.revision, Data: data})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist roster state: %v\n", err)
		return
	}
	if err := p.snapshots.Prune(ctx, keepSnapshots); err != nil {
		fmt.Fprintf(os.Stderr, "warning: prune snapshots: %v\n", err)
	}
}
