/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This software is licensed under the MIT license. For more information,
 * see <https://github.com/andodevel/telex-engine/blob/master/LICENSE>.
 */

package telex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesOrder(t *testing.T) {
	var got []string
	for _, r := range Rules() {
		got = append(got, r.Family.String()+" "+r.Pattern)
	}
	want := []string{
		"revert aaa", "revert eee", "revert ooo",
		"revert aww", "revert oww", "revert uww",
		"revert ddd",
		"revert âa", "revert êe", "revert ôo", "revert ăw", "revert ơw", "revert ưw",
		"tone-modified â[fsrxj]", "tone-modified ê[fsrxj]", "tone-modified ô[fsrxj]",
		"tone-modified ă[fsrxj]", "tone-modified ơ[fsrxj]", "tone-modified ư[fsrxj]",
		"compose aa", "compose dd", "compose ee", "compose oo",
		"compose aw", "compose ow", "compose uw",
		"tone-plain a[fsrxj]", "tone-plain e[fsrxj]", "tone-plain i[fsrxj]",
		"tone-plain o[fsrxj]", "tone-plain u[fsrxj]", "tone-plain y[fsrxj]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rule order mismatch (-want +got):\n%s", diff)
	}
}

func TestRulesFamiliesAreContiguous(t *testing.T) {
	var rules = Rules()
	for i := 1; i < len(rules); i++ {
		assert.LessOrEqual(t, rules[i-1].Family, rules[i].Family, "rule %d (%s)", i, rules[i].Pattern)
	}
}

func TestRulesFitInWindow(t *testing.T) {
	assert.Equal(t, 3, telexRules.MaxPatternLength())
	assert.LessOrEqual(t, telexRules.MaxPatternLength(), WindowSize)
	for _, r := range Rules() {
		assert.LessOrEqual(t, r.Length, 3, r.Pattern)
	}
}

// Within one family at most one rule may match any suffix, so first match
// wins is the same as family priority.
func TestRulesSuffixDisjointWithinFamily(t *testing.T) {
	var alphabet = []rune("aAeEoOuUiIyYdDwWsSfrxjâÂăĂêÊôÔơƠưƯđĐbn")
	var rules = Rules()
	for _, a := range alphabet {
		for _, b := range alphabet {
			for _, c := range alphabet {
				var window = []rune{a, b, c}
				var hits = map[Family][]string{}
				for _, r := range rules {
					if r.match(window[len(window)-r.Length:]) {
						hits[r.Family] = append(hits[r.Family], r.Pattern)
					}
				}
				for family, patterns := range hits {
					require.Len(t, patterns, 1, "%q matched %v in family %s", string(window), patterns, family)
				}
			}
		}
	}
}

func TestSelectRule(t *testing.T) {
	tests := []struct {
		window      string
		family      Family
		replacement string
	}{
		{"aaa", FamilyRevert, "aa"},
		{"AAA", FamilyRevert, "AA"},
		{"UWW", FamilyRevert, "UW"},
		{"DDD", FamilyRevert, "DD"},
		{"Ôo", FamilyRevert, "Oo"},
		{"Ơj", FamilyToneModified, "Ợ"},
		{"ưr", FamilyToneModified, "ử"},
		{"EE", FamilyCompose, "Ê"},
		{"Ow", FamilyCompose, "Ơ"},
		{"dD", FamilyCompose, "đ"},
		{"Yx", FamilyTonePlain, "Ỹ"},
		{"ij", FamilyTonePlain, "ị"},
		{"long prefix that is ignored us", FamilyTonePlain, "ú"},
	}
	for _, tt := range tests {
		t.Run(tt.window, func(t *testing.T) {
			m, ok := SelectRule([]rune(tt.window))
			require.True(t, ok)
			assert.Equal(t, tt.family, m.Rule.Family)
			assert.Equal(t, tt.replacement, string(m.Replacement))
		})
	}
}

func TestSelectRuleNoMatch(t *testing.T) {
	for _, window := range []string{"", "a", "oÔ", "đd", "bs", "aS", "wa", "ss"} {
		_, ok := SelectRule([]rune(window))
		assert.False(t, ok, window)
	}
}

// A tripled vowel is only reachable through a revert; if compose were
// checked first it would never revert.
func TestRevertBeforeCompose(t *testing.T) {
	m, ok := SelectRule([]rune("aaa"))
	require.True(t, ok)
	assert.Equal(t, FamilyRevert, m.Rule.Family)
	assert.Equal(t, 3, m.Rule.Length)
}

func TestNewRuleTableCustomInputMethod(t *testing.T) {
	defs := map[string]InputMethodDefinition{
		"HornOnly": {
			"w": "UOA_ƯƠĂ",
			"s": "DauSac",
		},
	}
	table := NewRuleTable(ParseInputMethod(defs, "HornOnly"))

	res := table.Apply("o", "ow", 2)
	assert.Equal(t, Result{Text: "ơ", CaretDelta: -1}, res)

	res = table.Apply("a", "aa", 2)
	assert.Equal(t, Result{Text: "aa"}, res)

	res = table.Apply("ơ", "ơs", 2)
	assert.Equal(t, Result{Text: "ớ", CaretDelta: -1}, res)

	res = table.Apply("o", "of", 2)
	assert.Equal(t, Result{Text: "of"}, res)
}

func TestNewRuleTableUnknownInputMethod(t *testing.T) {
	table := NewRuleTable(ParseInputMethod(InputMethodDefinitions, "VNI"))
	assert.Empty(t, table.Rules())
	assert.Equal(t, Result{Text: "aa"}, table.Apply("a", "aa", 2))
}
