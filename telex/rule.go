/*
 * Telex - A Vietnamese Input method editor
 * Copyright (C) Luong Thanh Lam <ltlam93@gmail.com>
 *
 * This software is licensed under the MIT license. For more information,
 * see <https://github.com/andodevel/telex-engine/blob/master/LICENSE>.
 */

package telex

import (
	"sort"
	"unicode"
)

// Family groups rules by priority. Lower families are checked first.
type Family uint8

const (
	// FamilyRevert undoes a previous composition on a repeated keystroke.
	FamilyRevert Family = iota
	// FamilyToneModified puts a tone on â ă ê ô ơ ư.
	FamilyToneModified
	// FamilyCompose builds â ă ê ô ơ ư đ from two plain keys.
	FamilyCompose
	// FamilyTonePlain puts a tone on a e i o u y.
	FamilyTonePlain
)

func (f Family) String() string {
	switch f {
	case FamilyRevert:
		return "revert"
	case FamilyToneModified:
		return "tone-modified"
	case FamilyCompose:
		return "compose"
	case FamilyTonePlain:
		return "tone-plain"
	}
	return "unknown"
}

// Rule rewrites the last Length runes of a window.
type Rule struct {
	Family Family
	// Pattern is the lower-case form of the suffix the rule matches; a
	// bracketed set stands for any one of its keys.
	Pattern string
	Length  int

	match   func(tail []rune) bool
	produce func(tail []rune) []rune
}

// Match is the result of a successful rule selection. The last
// Rule.Length runes of the window are to be replaced by Replacement.
type Match struct {
	Rule        Rule
	Replacement []rune
}

// RuleTable is an ordered, immutable list of rules.
type RuleTable struct {
	rules  []Rule
	maxLen int
}

var telexRules = NewRuleTable(ParseInputMethod(InputMethodDefinitions, "Telex"))

// SelectRule returns the first Telex rule matching the end of window.
func SelectRule(window []rune) (Match, bool) {
	return telexRules.Select(window)
}

// Rules returns the Telex rules in priority order.
func Rules() []Rule {
	return telexRules.Rules()
}

// NewRuleTable builds the rule list for im. The order of the returned
// table is the dispatch order.
func NewRuleTable(im InputMethod) *RuleTable {
	var (
		rules    []Rule
		keys     = im.ModifierKeys()
		toneKeys = im.ToneKeyString()
		modified []rune
	)

	for _, k := range keys {
		if mod, ok := im.Modifiers[k][k]; ok && IsVowel(mod) {
			rules = append(rules, tripledVowelRule(k))
		}
	}
	for _, k := range keys {
		if _, doubling := im.Modifiers[k][k]; doubling {
			continue
		}
		for _, base := range sortedKeys(im.Modifiers[k]) {
			rules = append(rules, repeatedKeyRule(base, k))
		}
	}
	for _, k := range keys {
		if mod, ok := im.Modifiers[k][k]; ok && !IsVowel(mod) {
			rules = append(rules, tripledStrokeRule(k))
		}
	}
	for _, k := range keys {
		for _, base := range sortedKeys(im.Modifiers[k]) {
			var mod = im.Modifiers[k][base]
			if !IsVowel(mod) {
				continue
			}
			rules = append(rules, unmodifyRule(mod, base, k))
			modified = append(modified, mod)
		}
	}

	if len(im.ToneKeys) > 0 {
		for _, mod := range modified {
			rules = append(rules, toneRule(FamilyToneModified, mod, im.ToneKeys, toneKeys))
		}
	}

	for _, k := range keys {
		for _, base := range sortedKeys(im.Modifiers[k]) {
			rules = append(rules, composeRule(base, k, im.Modifiers[k][base]))
		}
	}

	if len(im.ToneKeys) > 0 {
		for _, v := range PlainVowels {
			rules = append(rules, toneRule(FamilyTonePlain, v, im.ToneKeys, toneKeys))
		}
	}

	var t = &RuleTable{rules: rules}
	for _, r := range rules {
		t.maxLen = max(t.maxLen, r.Length)
	}
	return t
}

// Select returns the first rule, in table order, matching the end of
// window.
func (t *RuleTable) Select(window []rune) (Match, bool) {
	for _, r := range t.rules {
		if len(window) < r.Length {
			continue
		}
		var tail = window[len(window)-r.Length:]
		if r.match(tail) {
			return Match{Rule: r, Replacement: r.produce(tail)}, true
		}
	}
	return Match{}, false
}

func (t *RuleTable) Rules() []Rule {
	return append([]Rule(nil), t.rules...)
}

// MaxPatternLength is the longest suffix any rule inspects.
func (t *RuleTable) MaxPatternLength() int {
	return t.maxLen
}

// aaa -> aa
func tripledVowelRule(v rune) Rule {
	return Rule{
		Family:  FamilyRevert,
		Pattern: string([]rune{v, v, v}),
		Length:  3,
		match: func(s []rune) bool {
			return s[0] == s[1] && s[1] == s[2] && unicode.ToLower(s[0]) == v
		},
		produce: func(s []rune) []rune { return []rune{s[0], s[1]} },
	}
}

// aww -> aw
func repeatedKeyRule(base, key rune) Rule {
	return Rule{
		Family:  FamilyRevert,
		Pattern: string([]rune{base, key, key}),
		Length:  3,
		match: func(s []rune) bool {
			return unicode.ToLower(s[0]) == base && unicode.ToLower(s[1]) == key && unicode.ToLower(s[2]) == key
		},
		produce: func(s []rune) []rune { return []rune{s[0], s[1]} },
	}
}

// ddd -> dd
func tripledStrokeRule(d rune) Rule {
	return Rule{
		Family:  FamilyRevert,
		Pattern: string([]rune{d, d, d}),
		Length:  3,
		match: func(s []rune) bool {
			return unicode.ToLower(s[0]) == d && unicode.ToLower(s[1]) == d && unicode.ToLower(s[2]) == d
		},
		produce: func(s []rune) []rune { return []rune{s[0], s[1]} },
	}
}

// âa -> aa
func unmodifyRule(mod, base, key rune) Rule {
	return Rule{
		Family:  FamilyRevert,
		Pattern: string([]rune{mod, key}),
		Length:  2,
		match: func(s []rune) bool {
			return unicode.ToLower(s[0]) == mod && unicode.ToLower(s[1]) == key
		},
		produce: func(s []rune) []rune { return []rune{withCaseOf(base, s[0]), s[1]} },
	}
}

// aa -> â, aw -> ă, dd -> đ
func composeRule(base, key, mod rune) Rule {
	return Rule{
		Family:  FamilyCompose,
		Pattern: string([]rune{base, key}),
		Length:  2,
		match: func(s []rune) bool {
			return unicode.ToLower(s[0]) == base && unicode.ToLower(s[1]) == key
		},
		produce: func(s []rune) []rune { return []rune{withCaseOf(mod, s[0])} },
	}
}

// as -> á. Tone keys are matched in lower case only.
func toneRule(family Family, vowel rune, tones map[rune]Tone, keys string) Rule {
	return Rule{
		Family:  family,
		Pattern: string(vowel) + "[" + keys + "]",
		Length:  2,
		match: func(s []rune) bool {
			_, ok := tones[s[1]]
			return ok && unicode.ToLower(s[0]) == vowel
		},
		produce: func(s []rune) []rune {
			var toned, _ = AddTone(s[0], tones[s[1]])
			return []rune{toned}
		},
	}
}

func withCaseOf(r, like rune) rune {
	if unicode.IsUpper(like) {
		return unicode.ToUpper(r)
	}
	return r
}

func sortedKeys(m map[rune]rune) []rune {
	var keys = make([]rune, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
