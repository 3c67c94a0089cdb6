package services

import (
	"fmt"
	"math/rand"
	"strings"

	"iot-site-backend/content"
	"iot-site-backend/models"
)

// RuleInput is everything a responder rule may inspect for one user turn.
// Context is the snapshot taken after the turn's QuestionsAsked increment,
// so threshold rules compare against the post-increment count.
type RuleInput struct {
	Text       string // raw user text or quick-reply label
	Lower      string // lowercased text for keyword rules
	QuickReply bool   // true when the text came from a quick-reply click
	PagePath   string // page the widget is mounted on
	Context    models.ConversationContext
}

// responderRule is one (predicate, responder) pair in the ordered table.
// First matching rule wins.
type responderRule struct {
	name    string
	matches func(in RuleInput) bool
	respond func(in RuleInput, rng *rand.Rand) models.BotReply
}

// Responder deterministically selects exactly one canned reply per user
// turn by walking an ordered rule table. It is total: every input string,
// including empty or arbitrary Unicode, lands on some rule because the
// final fallback always matches.
type Responder struct {
	script *content.ChatScript
	rules  []responderRule
}

// NewResponder builds the rule table from a chat script. threshold is the
// question count above which the responder offers human support on its own.
func NewResponder(script *content.ChatScript, threshold int) *Responder {
	r := &Responder{script: script}

	// 1. Canned quick-reply table, exact label match whether the label was
	// clicked or typed verbatim.
	r.add("quick_reply", func(in RuleInput) bool {
		_, ok := script.QuickReplies[in.Text]
		return ok
	}, func(in RuleInput, _ *rand.Rand) models.BotReply {
		return script.QuickReplies[in.Text]
	})

	// 2. A clicked label we have no table entry for: echo it back and ask
	// for specifics rather than dropping to the generic fallback.
	r.add("quick_reply_unrecognized", func(in RuleInput) bool {
		return in.QuickReply
	}, func(in RuleInput, _ *rand.Rand) models.BotReply {
		return models.BotReply{
			Text:    fmt.Sprintf(script.QuickReplyFallbackText, in.Text),
			Options: script.QuickReplyFallbackOptions,
		}
	})

	// 3. Explicit escalation keywords. These keep firing even after a
	// counter-based escalation has already flipped NeedsHumanSupport.
	r.add("escalation_keyword", func(in RuleInput) bool {
		return containsAny(in.Lower, script.EscalationKeywords)
	}, func(in RuleInput, _ *rand.Rand) models.BotReply {
		return script.EscalationReply
	})

	// 4. Automatic escalation once the question count crosses the
	// threshold. One-shot: gated on the NeedsHumanSupport flip.
	r.add("escalation_auto", func(in RuleInput) bool {
		return in.Context.QuestionsAsked > threshold && !in.Context.NeedsHumanSupport
	}, func(in RuleInput, _ *rand.Rand) models.BotReply {
		return script.EscalationReply
	})

	// 5-7. Keyword rule groups in script order: products, solutions,
	// then the generic documentation/support/sales rules.
	r.addKeywordGroup("product", script.ProductRules)
	r.addKeywordGroup("solution", script.SolutionRules)
	r.addKeywordGroup("generic", script.GenericRules)

	// 8. No keyword matched: branch on the page section the widget is
	// mounted in.
	r.add("page_section", func(in RuleInput) bool {
		return matchPageRule(script.PageRules, in.PagePath) != nil
	}, func(in RuleInput, _ *rand.Rand) models.BotReply {
		return matchPageRule(script.PageRules, in.PagePath).Reply
	})

	// 9. Established topic and an ongoing conversation: pick one of the
	// topic's canned follow-up sentences pseudo-randomly.
	r.add("context_continuation", func(in RuleInput) bool {
		if in.Context.LastTopic == "" || in.Context.QuestionsAsked <= 1 {
			return false
		}
		return len(script.Continuations[in.Context.LastTopic]) > 0
	}, func(in RuleInput, rng *rand.Rand) models.BotReply {
		candidates := script.Continuations[in.Context.LastTopic]
		return models.BotReply{
			Text:    candidates[rng.Intn(len(candidates))],
			Options: script.ContinuationOptions,
		}
	})

	// 10. Terminal fallback, always matches.
	r.add("fallback", func(in RuleInput) bool {
		return true
	}, func(in RuleInput, _ *rand.Rand) models.BotReply {
		return script.Fallback
	})

	return r
}

// Respond walks the rule table top to bottom and returns the first
// matching rule's reply along with the rule name for observability.
func (r *Responder) Respond(in RuleInput, rng *rand.Rand) (models.BotReply, string) {
	for _, rule := range r.rules {
		if rule.matches(in) {
			return rule.respond(in, rng), rule.name
		}
	}
	// Unreachable: the fallback rule matches everything.
	return r.script.Fallback, "fallback"
}

func (r *Responder) add(name string, matches func(RuleInput) bool, respond func(RuleInput, *rand.Rand) models.BotReply) {
	r.rules = append(r.rules, responderRule{name: name, matches: matches, respond: respond})
}

func (r *Responder) addKeywordGroup(group string, rules []content.KeywordRule) {
	for i := range rules {
		rule := rules[i]
		r.add(group+":"+rule.Topic, func(in RuleInput) bool {
			return containsAny(in.Lower, rule.Keywords)
		}, func(in RuleInput, _ *rand.Rand) models.BotReply {
			return rule.Reply
		})
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func matchPageRule(rules []content.PageRule, pagePath string) *content.PageRule {
	for i := range rules {
		if rules[i].Prefix != "" && strings.HasPrefix(pagePath, rules[i].Prefix) {
			return &rules[i]
		}
	}
	return nil
}
