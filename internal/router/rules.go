package router

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrEmptyKeywordGroup = errors.New("keyword group is empty")

// DefaultRules returns the compiled-in Korean/English rule set.
func DefaultRules() RuleSet {
	return RuleSet{
		Todo: DomainRules{
			List:    slices.Clone(defaultTodoList),
			Trigger: slices.Clone(defaultTodo),
			Create:  slices.Clone(defaultCreate),
		},
		Memo: DomainRules{
			List:    slices.Clone(defaultMemoList),
			Trigger: slices.Clone(defaultMemo),
			Create:  slices.Clone(defaultCreate),
		},
		File: FileRules{
			Trigger: slices.Clone(defaultFile),
			Dir:     slices.Clone(defaultFileDir),
			File:    slices.Clone(defaultFileOnly),
		},
	}
}

// LoadRules reads a YAML rule file. Groups missing from the file keep their defaults.
// An empty path returns DefaultRules.
func LoadRules(path string) (RuleSet, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("%s: read %s: %w", LogPrefixLoadRules, path, err)
	}

	var file RuleSet
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return RuleSet{}, fmt.Errorf("%s: parse %s: %w", LogPrefixLoadRules, path, err)
	}

	override(&rules.Todo.List, file.Todo.List)
	override(&rules.Todo.Trigger, file.Todo.Trigger)
	override(&rules.Todo.Create, file.Todo.Create)
	override(&rules.Memo.List, file.Memo.List)
	override(&rules.Memo.Trigger, file.Memo.Trigger)
	override(&rules.Memo.Create, file.Memo.Create)
	override(&rules.File.Trigger, file.File.Trigger)
	override(&rules.File.Dir, file.File.Dir)
	override(&rules.File.File, file.File.File)

	return rules, nil
}

func override(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}

// Normalize lower-cases and trims every keyword, drops blanks and duplicates,
// and reports the first required group left empty. file.file may be empty.
func (r RuleSet) Normalize() (RuleSet, error) {
	groups := []struct {
		name     string
		kw       *[]string
		optional bool
	}{
		{"todo.list", &r.Todo.List, false},
		{"todo.trigger", &r.Todo.Trigger, false},
		{"todo.create", &r.Todo.Create, false},
		{"memo.list", &r.Memo.List, false},
		{"memo.trigger", &r.Memo.Trigger, false},
		{"memo.create", &r.Memo.Create, false},
		{"file.trigger", &r.File.Trigger, false},
		{"file.dir", &r.File.Dir, false},
		{"file.file", &r.File.File, true},
	}

	for _, g := range groups {
		*g.kw = normalizeGroup(*g.kw)
		if len(*g.kw) == 0 && !g.optional {
			return RuleSet{}, fmt.Errorf("%w: %s", ErrEmptyKeywordGroup, g.name)
		}
	}
	return r, nil
}

func normalizeGroup(in []string) []string {
	out := make([]string, 0, len(in))
	for _, kw := range in {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || slices.Contains(out, kw) {
			continue
		}
		out = append(out, kw)
	}
	return out
}
