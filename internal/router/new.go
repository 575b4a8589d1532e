package router

import "zitta/internal/intent"

// Router maps a message to an Intent.
type Router interface {
	Route(message string) intent.Intent
	Match(message string) Match
}

// KeywordRouter classifies messages by substring keyword matching.
// It holds no mutable state and is safe for concurrent use.
type KeywordRouter struct {
	rules RuleSet
}

var _ Router = (*KeywordRouter)(nil)

// New validates the rule set and builds a KeywordRouter.
func New(rules RuleSet) (*KeywordRouter, error) {
	normalized, err := rules.Normalize()
	if err != nil {
		return nil, err
	}
	return &KeywordRouter{rules: normalized}, nil
}

// Rules returns a copy of the active rule set.
func (r *KeywordRouter) Rules() RuleSet {
	out, _ := r.rules.Normalize()
	return out
}
