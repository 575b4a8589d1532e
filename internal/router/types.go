package router

import "zitta/internal/intent"

// DomainRules are the keyword groups for a storable domain (todo, memo).
// List is checked before Trigger.
type DomainRules struct {
	List    []string `yaml:"list"`
	Trigger []string `yaml:"trigger"`
	Create  []string `yaml:"create"`
}

// FileRules are the keyword groups for file browsing.
// File is reserved for a files-only listing; Route does not read it, and a
// generic file keyword lists everything.
type FileRules struct {
	Trigger []string `yaml:"trigger"`
	Dir     []string `yaml:"dir"`
	File    []string `yaml:"file"`
}

// RuleSet is the whole static keyword configuration.
type RuleSet struct {
	Todo DomainRules `yaml:"todo"`
	Memo DomainRules `yaml:"memo"`
	File FileRules   `yaml:"file"`
}

// Match explains a routing decision.
type Match struct {
	Intent intent.Intent
	// Keyword is the keyword that decided the domain, empty for chat.
	Keyword string
	// ExplicitVerb is set when a create intent also carried a create verb.
	ExplicitVerb bool
}
