package costs

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	got := Merge([]Item{{"Mora", 5}, {"Mora", 10}, {"Book", 2}})
	want := []Item{{"Mora", 15}, {"Book", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMergePreservesFirstAppearanceOrder(t *testing.T) {
	got := Merge(
		[]Item{{"Ore", 3}},
		[]Item{{"Mora", 100}, {"Ore", 1}},
		[]Item{{"Gem", 2}},
	)
	want := []Item{{"Ore", 4}, {"Mora", 100}, {"Gem", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMergeCommutativeOnTotals(t *testing.T) {
	a := []Item{{"Mora", 5}, {"Book", 2}}
	b := []Item{{"Book", 3}, {"Mora", 7}}

	totals := func(items []Item) map[string]int {
		m := make(map[string]int)
		for _, it := range items {
			m[it.Name] += it.Count
		}
		return m
	}

	ab := totals(Merge(a, b))
	ba := totals(Merge(b, a))
	if !reflect.DeepEqual(ab, ba) {
		t.Errorf("merge totals differ by order: %v vs %v", ab, ba)
	}

	// Associativity on totals.
	c := []Item{{"Mora", 11}}
	left := totals(Merge(Merge(a, b), c))
	right := totals(Merge(a, Merge(b, c)))
	if !reflect.DeepEqual(left, right) {
		t.Errorf("merge totals not associative: %v vs %v", left, right)
	}
}

func TestMergeEmpty(t *testing.T) {
	if got := Merge(); got != nil {
		t.Errorf("Merge() = %v, want nil", got)
	}
	if got := Merge(nil, []Item{}); got != nil {
		t.Errorf("Merge(nil, empty) = %v, want nil", got)
	}
}

func TestTableRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     int
		ok       bool
	}{
		{"full span", 1, 90, 8362650, true},
		{"first bracket", 1, 20, 120175, true},
		{"reversed is zero", 90, 1, 0, true},
		{"equal is zero", 50, 50, 0, true},
		{"missing to", 1, 95, 0, false},
		{"missing from", 15, 90, 8362650, false},
	}

	for _, tt := range tests {
		got, ok := CharacterEXP.Range(tt.from, tt.to)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s: Range(%d, %d) = (%d, %v), want (%d, %v)",
				tt.name, tt.from, tt.to, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTableRangeMonotonic(t *testing.T) {
	milestones := []int{1, 20, 40, 50, 60, 70, 80, 90}

	// Non-decreasing in target for fixed current.
	for _, cur := range milestones {
		prev := -1
		for _, tgt := range milestones {
			got, _ := CharacterEXP.Range(cur, tgt)
			if got < prev {
				t.Errorf("Range(%d, %d) = %d decreased below %d", cur, tgt, got, prev)
			}
			prev = got
		}
	}

	// Non-increasing in current for fixed target.
	for _, tgt := range milestones {
		prev := int(^uint(0) >> 1)
		for _, cur := range milestones {
			got, _ := CharacterEXP.Range(cur, tgt)
			if got > prev {
				t.Errorf("Range(%d, %d) = %d increased above %d", cur, tgt, got, prev)
			}
			prev = got
		}
	}
}

func TestCharacterLevelCost(t *testing.T) {
	items, ok := CharacterLevelCost(1, 20)
	if !ok {
		t.Fatal("expected complete lookup")
	}
	want := []Item{{"Mora", 24035}, {"Hero's Wit", 7}}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("CharacterLevelCost(1, 20) = %v, want %v", items, want)
	}
}

func TestCharacterLevelCostAtOrPastTarget(t *testing.T) {
	for _, tt := range [][2]int{{90, 90}, {90, 1}, {50, 40}, {20, 20}} {
		items, _ := CharacterLevelCost(tt[0], tt[1])
		if len(items) != 0 {
			t.Errorf("CharacterLevelCost(%d, %d) = %v, want empty", tt[0], tt[1], items)
		}
	}
}

func TestWeaponLevelCost(t *testing.T) {
	items, ok := WeaponLevelCost(WeaponRarity5, 1, 20)
	if !ok {
		t.Fatal("expected complete lookup")
	}
	want := []Item{{"Mora", 2020}, {"Mystic Enhancement Ore", 41}}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("WeaponLevelCost(5, 1, 20) = %v, want %v", items, want)
	}
}

func TestWeaponLevelCostUnknownRarity(t *testing.T) {
	items, ok := WeaponLevelCost(WeaponRarity(2), 1, 90)
	if ok || items != nil {
		t.Errorf("WeaponLevelCost(2, 1, 90) = (%v, %v), want (nil, false)", items, ok)
	}
}

func TestArtifactLevelCost(t *testing.T) {
	items, ok := ArtifactLevelCost(0, 20)
	if !ok {
		t.Fatal("expected complete lookup")
	}
	want := []Item{{"Mora", 88800}, {"Artifact EXP", 871500}}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("ArtifactLevelCost(0, 20) = %v, want %v", items, want)
	}

	if items, _ := ArtifactLevelCost(20, 20); len(items) != 0 {
		t.Errorf("ArtifactLevelCost(20, 20) = %v, want empty", items)
	}
}

func TestMoraForEXPRoundsUp(t *testing.T) {
	tests := []struct {
		exp  int
		rate float64
		want int
	}{
		{120175, CharacterMoraRate, 24035},
		{404000, WeaponMoraRate, 2020},
		{3, 0.2, 1},  // 0.6 rounds up
		{10, 0.2, 2}, // exact
		{0, 0.2, 0},
		{-50, 0.2, 0},
	}

	for _, tt := range tests {
		if got := MoraForEXP(tt.exp, tt.rate); got != tt.want {
			t.Errorf("MoraForEXP(%d, %v) = %d, want %d", tt.exp, tt.rate, got, tt.want)
		}
	}
}

func TestUnitsForEXPRoundsUp(t *testing.T) {
	tests := []struct {
		exp, unit, want int
	}{
		{120175, CharacterEXPUnit, 7},
		{404000, WeaponEXPUnit, 41},
		{20000, 20000, 1},
		{20001, 20000, 2},
		{0, 20000, 0},
	}

	for _, tt := range tests {
		if got := UnitsForEXP(tt.exp, tt.unit); got != tt.want {
			t.Errorf("UnitsForEXP(%d, %d) = %d, want %d", tt.exp, tt.unit, got, tt.want)
		}
	}
}
