package planner

import (
	"encoding/json"
	"fmt"

	"github.com/teyvatops/ascend/internal/goals"
)

// Document is the persisted and exported serialization of the full roster
// state. Import accepts exactly this shape; anything else is rejected in
// full before any state change.
type Document struct {
	OwnedCharacters   []string                 `json:"ownedCharacters"`
	CharacterGoals    map[string]*goals.Record `json:"characterGoals"`
	SelectedCharacter *string                  `json:"selectedCharacter"`
}

// Export produces the document for the current roster state.
func (p *Planner) Export() Document {
	doc := Document{
		OwnedCharacters: make([]string, len(p.owned)),
		CharacterGoals:  make(map[string]*goals.Record, len(p.records)),
	}
	copy(doc.OwnedCharacters, p.owned)
	for id, r := range p.records {
		clone := *r
		clone.Artifacts = cloneArtifacts(r.Artifacts)
		doc.CharacterGoals[id] = &clone
	}
	if p.selected != "" {
		sel := p.selected
		doc.SelectedCharacter = &sel
	}
	return doc
}

// ExportJSON serializes the current roster state as an indented document.
func (p *Planner) ExportJSON() ([]byte, error) {
	b, err := json.MarshalIndent(p.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal roster document: %w", err)
	}
	return b, nil
}

func cloneArtifacts(in [goals.NumSlots]goals.Artifact) [goals.NumSlots]goals.Artifact {
	out := in
	for i := range out {
		// Non-nil so an empty set serializes as [] and round-trips through
		// the document schema.
		out[i].DesiredSubstats = append([]string{}, in[i].DesiredSubstats...)
	}
	return out
}
