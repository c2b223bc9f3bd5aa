package planner

// documentSchemaDef is the JSON Schema for the exported/imported roster
// document. It covers everything structural; checks that need the game data
// allow-list (known ids, slot order) live in the semantic pass.
var documentSchemaDef = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"ownedCharacters": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"selectedCharacter": map[string]any{
			"type": []any{"string", "null"},
		},
		"characterGoals": map[string]any{
			"type":                 "object",
			"additionalProperties": goalSchemaDef,
		},
	},
}

var milestoneEnum = []any{1, 20, 40, 50, 60, 70, 80, 90}

var artifactLevelEnum = []any{0, 4, 8, 12, 16, 20}

var goalSchemaDef = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required": []any{
		"currentLevel", "targetLevel",
		"weapon", "weaponCurrentLevel", "weaponTargetLevel",
		"artifacts", "talents",
	},
	"properties": map[string]any{
		"currentLevel":       map[string]any{"enum": milestoneEnum},
		"targetLevel":        map[string]any{"enum": milestoneEnum},
		"weapon":             map[string]any{"type": []any{"string", "null"}},
		"weaponCurrentLevel": map[string]any{"enum": milestoneEnum},
		"weaponTargetLevel":  map[string]any{"enum": milestoneEnum},
		"artifacts": map[string]any{
			"type":     "array",
			"minItems": 5,
			"maxItems": 5,
			"items":    artifactSchemaDef,
		},
		"talents": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []any{"normalAttack", "skill", "burst"},
			"properties": map[string]any{
				"normalAttack": talentSchemaDef,
				"skill":        talentSchemaDef,
				"burst":        talentSchemaDef,
			},
		},
	},
}

var artifactSchemaDef = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required": []any{
		"slot", "currentLevel", "targetLevel",
		"mainStat", "desiredSubstats", "targetSubstatCount",
	},
	"properties": map[string]any{
		"slot": map[string]any{
			"enum": []any{"flower", "plume", "sands", "goblet", "circlet"},
		},
		"currentLevel": map[string]any{"enum": artifactLevelEnum},
		"targetLevel":  map[string]any{"enum": artifactLevelEnum},
		"mainStat":     map[string]any{"type": "string"},
		"desiredSubstats": map[string]any{
			"type":     "array",
			"maxItems": 4,
			"items":    map[string]any{"type": "string"},
		},
		"targetSubstatCount": map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": 4,
		},
	},
}

var talentSchemaDef = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"currentLevel", "targetLevel"},
	"properties": map[string]any{
		"currentLevel": map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
		"targetLevel":  map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
	},
}
