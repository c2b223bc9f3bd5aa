package planner

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teyvatops/ascend/internal/goals"
)

func buildRoster(t *testing.T) *Planner {
	t.Helper()
	p, _ := newTestPlanner(t)
	p.AddCharacter("hu_tao")
	p.AddCharacter("ganyu")
	p.Select("hu_tao")
	p.SetLevel("hu_tao", DimensionCharacter, goals.FieldTarget, 90)
	p.SetWeapon("hu_tao", "staff_of_homa")
	p.SetLevel("hu_tao", DimensionWeapon, goals.FieldTarget, 90)
	p.SetTalentLevel("hu_tao", goals.TalentSkill, goals.FieldTarget, 9)
	p.SetArtifactLevel("hu_tao", goals.SlotFlower, goals.FieldTarget, 20)
	p.SetArtifactMainStat("hu_tao", goals.SlotCirclet, "CRIT Rate")
	p.ToggleSubstat("hu_tao", goals.SlotCirclet, "CRIT DMG")
	p.SetTargetSubstatCount("hu_tao", goals.SlotCirclet, 1)
	return p
}

func TestValidateAcceptsOwnExport(t *testing.T) {
	p := buildRoster(t)
	raw, err := p.ExportJSON()
	require.NoError(t, err)

	errs := p.Validate(raw)
	assert.Empty(t, errs)
}

func TestExportImportRoundTrip(t *testing.T) {
	p := buildRoster(t)
	raw, err := p.ExportJSON()
	require.NoError(t, err)

	q, _ := newTestPlanner(t)
	errs := q.Import(raw)
	require.Empty(t, errs)

	assert.Equal(t, p.Export(), q.Export())
	assert.Equal(t, "hu_tao", q.Selected())

	// Idempotence: importing the export of the import changes nothing.
	raw2, err := q.ExportJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(raw2))
}

func TestImportRejectsUnknownCharacter(t *testing.T) {
	p := buildRoster(t)
	before, err := p.ExportJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(before, &doc))
	doc["ownedCharacters"] = append(doc["ownedCharacters"].([]any), "paimon")
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	errs := p.Import(raw)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "paimon")

	// The store is untouched.
	after, err := p.ExportJSON()
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestImportRejectsNonObjectDocument(t *testing.T) {
	p, _ := newTestPlanner(t)

	for _, raw := range []string{`[]`, `"hello"`, `42`, `null`, `{invalid`} {
		errs := p.Validate([]byte(raw))
		assert.NotEmpty(t, errs, "document %s should be rejected", raw)
	}
}

func TestImportRejectsShortArtifactArray(t *testing.T) {
	p := buildRoster(t)
	raw, err := p.ExportJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	hutao := doc["characterGoals"].(map[string]any)["hu_tao"].(map[string]any)
	artifacts := hutao["artifacts"].([]any)
	hutao["artifacts"] = artifacts[:4] // drop the circlet
	mutated, err := json.Marshal(doc)
	require.NoError(t, err)

	errs := p.Import(mutated)
	require.NotEmpty(t, errs)

	// At least one error names the character and the missing slot.
	var found bool
	for _, e := range errs {
		if strings.Contains(e.Path, "hu_tao") && strings.Contains(e.Message, "circlet") {
			found = true
		}
	}
	assert.True(t, found, "errors should identify the character and missing slot: %v", errs)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	p, _ := newTestPlanner(t)

	raw := []byte(`{
		"ownedCharacters": ["hu_tao", "paimon", "dainsleif"],
		"selectedCharacter": "ganyu",
		"characterGoals": {}
	}`)

	errs := p.Validate(raw)
	// Two unknown ids plus a selection outside the owned set.
	require.Len(t, errs, 3)
}

func TestValidateSlotOrder(t *testing.T) {
	p := buildRoster(t)
	raw, err := p.ExportJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	hutao := doc["characterGoals"].(map[string]any)["hu_tao"].(map[string]any)
	artifacts := hutao["artifacts"].([]any)
	artifacts[0], artifacts[1] = artifacts[1], artifacts[0] // swap flower and plume
	mutated, err := json.Marshal(doc)
	require.NoError(t, err)

	errs := p.Validate(mutated)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "slot")
}

func TestValidateSubstatCountAgainstSet(t *testing.T) {
	p := buildRoster(t)
	raw, err := p.ExportJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	hutao := doc["characterGoals"].(map[string]any)["hu_tao"].(map[string]any)
	circlet := hutao["artifacts"].([]any)[4].(map[string]any)
	circlet["targetSubstatCount"] = 3 // only one desired substat
	mutated, err := json.Marshal(doc)
	require.NoError(t, err)

	errs := p.Validate(mutated)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "targetSubstatCount")
}

func TestImportForcesLockedMainStats(t *testing.T) {
	p := buildRoster(t)
	raw, err := p.ExportJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	hutao := doc["characterGoals"].(map[string]any)["hu_tao"].(map[string]any)
	flower := hutao["artifacts"].([]any)[0].(map[string]any)
	flower["mainStat"] = "CRIT Rate"
	mutated, err := json.Marshal(doc)
	require.NoError(t, err)

	q, _ := newTestPlanner(t)
	errs := q.Import(mutated)
	require.Empty(t, errs)

	r := q.Goal("hu_tao")
	require.NotNil(t, r)
	assert.Equal(t, "HP", r.Artifacts[goals.SlotFlower].MainStat)
}

func TestImportRejectsUnknownWeapon(t *testing.T) {
	p := buildRoster(t)
	raw, err := p.ExportJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	hutao := doc["characterGoals"].(map[string]any)["hu_tao"].(map[string]any)
	hutao["weapon"] = "excalibur"
	mutated, err := json.Marshal(doc)
	require.NoError(t, err)

	errs := p.Validate(mutated)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "excalibur")
}

func TestImportRejectsOffMilestoneLevels(t *testing.T) {
	p := buildRoster(t)
	raw, err := p.ExportJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	hutao := doc["characterGoals"].(map[string]any)["hu_tao"].(map[string]any)
	hutao["currentLevel"] = 42
	mutated, err := json.Marshal(doc)
	require.NoError(t, err)

	errs := p.Validate(mutated)
	assert.NotEmpty(t, errs)
}
