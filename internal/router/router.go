package router

import (
	"strings"

	"zitta/internal/intent"
)

// Route classifies message. Priority: todo list, todo, memo list, memo, file, chat.
func (r *KeywordRouter) Route(message string) intent.Intent {
	return r.Match(message).Intent
}

// Match is Route with the deciding keyword attached.
func (r *KeywordRouter) Match(message string) Match {
	msg := strings.ToLower(strings.TrimSpace(message))

	if m, ok := r.matchDomain(msg, intent.TypeTodo, r.rules.Todo); ok {
		return m
	}
	if m, ok := r.matchDomain(msg, intent.TypeMemo, r.rules.Memo); ok {
		return m
	}

	if kw, ok := firstContained(msg, r.rules.File.Trigger); ok {
		filter := intent.FilterAll
		if _, isDir := firstContained(msg, r.rules.File.Dir); isDir {
			filter = intent.FilterDir
		}
		// Generic file keywords stay unfiltered.
		return Match{Intent: intent.FileList(filter, intent.SourceRouter), Keyword: kw}
	}

	return Match{Intent: intent.Chat(intent.SourceRouter)}
}

// matchDomain checks list keywords before triggers; any trigger hit without a
// list keyword is a create.
func (r *KeywordRouter) matchDomain(msg string, t intent.Type, rules DomainRules) (Match, bool) {
	if kw, ok := firstContained(msg, rules.List); ok {
		return Match{Intent: intent.New(t, intent.ActionList, nil, intent.SourceRouter), Keyword: kw}, true
	}
	if kw, ok := firstContained(msg, rules.Trigger); ok {
		_, verb := firstContained(msg, rules.Create)
		return Match{
			Intent:       intent.New(t, intent.ActionCreate, nil, intent.SourceRouter),
			Keyword:      kw,
			ExplicitVerb: verb,
		}, true
	}
	return Match{}, false
}

func firstContained(msg string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return kw, true
		}
	}
	return "", false
}
