package planner

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/teyvatops/ascend/internal/goals"
)

// ValidationError is one structural or semantic problem in an imported
// document. Validation collects every detectable error instead of stopping
// at the first, so the caller can report the complete list.
type ValidationError struct {
	Path    string // JSON pointer into the document, "" for document-level
	Message string
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledDocumentSchema compiles the document schema once per process.
func compiledDocumentSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not Go maps
		// with typed numbers. Marshal then unmarshal to normalize.
		defBytes, err := json.Marshal(documentSchemaDef)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://roster-document.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// importDocument is a lenient decode of an untrusted document, used only by
// the semantic pass. Artifacts stay a slice here so a wrong-length array is
// observable instead of silently truncated.
type importDocument struct {
	OwnedCharacters   []string              `json:"ownedCharacters"`
	CharacterGoals    map[string]importGoal `json:"characterGoals"`
	SelectedCharacter *string               `json:"selectedCharacter"`
}

type importGoal struct {
	Weapon    *string          `json:"weapon"`
	Artifacts []goals.Artifact `json:"artifacts"`
}

// Validate checks an untrusted document against the store schema without
// mutating anything. It returns every detectable error; an empty result
// means the document is safe to apply.
func (p *Planner) Validate(raw []byte) []ValidationError {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return []ValidationError{{Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}
	if _, ok := parsed.(map[string]any); !ok {
		return []ValidationError{{Message: "document must be a JSON object"}}
	}

	var errs []ValidationError

	schema, err := compiledDocumentSchema()
	if err != nil {
		return []ValidationError{{Message: fmt.Sprintf("internal: %v", err)}}
	}
	if err := schema.Validate(parsed); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			errs = append(errs, flattenSchemaErrors(ve)...)
		} else {
			errs = append(errs, ValidationError{Message: err.Error()})
		}
	}

	var doc importDocument
	if err := json.Unmarshal(raw, &doc); err == nil {
		errs = append(errs, p.semanticErrors(doc)...)
	}
	return errs
}

// Import validates and, if clean, atomically replaces the whole roster
// state with the document. A non-empty error list means nothing changed.
func (p *Planner) Import(raw []byte) []ValidationError {
	if errs := p.Validate(raw); len(errs) > 0 {
		return errs
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Validate parsed the same bytes, so this cannot happen short of a
		// schema/type mismatch bug.
		return []ValidationError{{Message: fmt.Sprintf("decode document: %v", err)}}
	}

	p.replace(doc)
	p.commit()
	return nil
}

var schemaErrorPrinter = message.NewPrinter(language.English)

// flattenSchemaErrors walks the validation error tree and collects its
// leaves, each with a JSON pointer to the offending value.
func flattenSchemaErrors(ve *jsonschema.ValidationError) []ValidationError {
	if len(ve.Causes) == 0 {
		return []ValidationError{{
			Path:    "/" + strings.Join(ve.InstanceLocation, "/"),
			Message: ve.ErrorKind.LocalizedString(schemaErrorPrinter),
		}}
	}
	var errs []ValidationError
	for _, cause := range ve.Causes {
		errs = append(errs, flattenSchemaErrors(cause)...)
	}
	return errs
}

func (p *Planner) semanticErrors(doc importDocument) []ValidationError {
	var errs []ValidationError

	addf := func(path, format string, args ...any) {
		errs = append(errs, ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	seen := make(map[string]bool, len(doc.OwnedCharacters))
	for i, id := range doc.OwnedCharacters {
		path := fmt.Sprintf("/ownedCharacters/%d", i)
		if !p.provider.IsCharacter(id) {
			addf(path, "unknown character %q", id)
		}
		if seen[id] {
			addf(path, "duplicate character %q", id)
		}
		seen[id] = true
	}

	if sel := doc.SelectedCharacter; sel != nil {
		switch {
		case !p.provider.IsCharacter(*sel):
			addf("/selectedCharacter", "unknown character %q", *sel)
		case !seen[*sel]:
			addf("/selectedCharacter", "character %q is not in ownedCharacters", *sel)
		}
	}

	for id, g := range doc.CharacterGoals {
		base := "/characterGoals/" + id
		if !p.provider.IsCharacter(id) {
			addf(base, "unknown character %q", id)
		}
		if g.Weapon != nil && *g.Weapon != "" && !p.provider.IsWeapon(*g.Weapon) {
			addf(base+"/weapon", "unknown weapon %q", *g.Weapon)
		}
		errs = append(errs, artifactErrors(base, g.Artifacts)...)
	}

	return errs
}

// artifactErrors enforces the fixed slot order and count, and the substat
// invariants the schema cannot express.
func artifactErrors(base string, artifacts []goals.Artifact) []ValidationError {
	var errs []ValidationError

	addf := func(path, format string, args ...any) {
		errs = append(errs, ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	for i := len(artifacts); i < goals.NumSlots; i++ {
		addf(base+"/artifacts", "missing slot %q", goals.SlotName(goals.ArtifactSlot(i)))
	}
	if len(artifacts) > goals.NumSlots {
		addf(base+"/artifacts", "want %d entries, got %d", goals.NumSlots, len(artifacts))
	}

	for i, a := range artifacts {
		if i >= goals.NumSlots {
			break
		}
		slot := goals.ArtifactSlot(i)
		path := fmt.Sprintf("%s/artifacts/%d", base, i)

		if a.Slot != goals.SlotName(slot) {
			addf(path+"/slot", "got %q, want %q at position %d", a.Slot, goals.SlotName(slot), i)
		}

		// Locked slots are forced on apply, so any imported value passes.
		if _, locked := goals.LockedMainStat(slot); !locked {
			if !goals.IsValidMainStat(slot, a.MainStat) {
				addf(path+"/mainStat", "%q is not a valid %s main stat", a.MainStat, slot.DisplayName())
			}
		}

		seen := make(map[string]bool, len(a.DesiredSubstats))
		for j, s := range a.DesiredSubstats {
			subPath := fmt.Sprintf("%s/desiredSubstats/%d", path, j)
			if !goals.IsValidSubstat(s) {
				addf(subPath, "unknown substat %q", s)
			}
			if s == a.MainStat {
				addf(subPath, "substat %q duplicates the main stat", s)
			}
			if seen[s] {
				addf(subPath, "duplicate substat %q", s)
			}
			seen[s] = true
		}

		if a.TargetSubstatCount > len(a.DesiredSubstats) {
			addf(path+"/targetSubstatCount",
				"count %d exceeds the %d desired substats", a.TargetSubstatCount, len(a.DesiredSubstats))
		}
	}

	return errs
}
