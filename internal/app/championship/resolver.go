package championship

import (
	"strings"

	appgames "github.com/preston-bernstein/team-scores-service/internal/app/games"
	domaingames "github.com/preston-bernstein/team-scores-service/internal/domain/games"
	"github.com/preston-bernstein/team-scores-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/team-scores-service/internal/domain/teams"
)

// Rule names the title game of one league.
type Rule struct {
	League  string // league endpoint key
	Label   string // display label, e.g. "NFL"
	Keyword string // matched case-insensitively against event name and short name
	Logo    string
}

// DefaultRules lists title games in priority order.
var DefaultRules = []Rule{
	{League: "nfl", Label: "NFL", Keyword: "super bowl", Logo: "superbowl.png"},
	{League: "mlb", Label: "MLB", Keyword: "world series", Logo: "worldseries.png"},
	{League: "cfb", Label: "CFB", Keyword: "national championship", Logo: "collegefootball.png"},
}

// Match is the title game chosen for the championship card.
type Match struct {
	Rule    Rule
	Event   scoreboard.Event
	Summary domaingames.GameSummary
}

// Resolver picks at most one title game across leagues.
type Resolver struct {
	rules []Rule
}

// NewResolver copies the rules; their order is the priority order.
func NewResolver(rules []Rule) *Resolver {
	return &Resolver{rules: append([]Rule(nil), rules...)}
}

// Leagues returns the league keys the resolver reads, in priority order.
func (r *Resolver) Leagues() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		keys = append(keys, rule.League)
	}
	return keys
}

// Resolve scans leagues in priority order and returns the first event whose
// name or short name contains that league's keyword.
func (r *Resolver) Resolve(docs map[string]scoreboard.Document) (Match, bool) {
	if r == nil {
		return Match{}, false
	}
	for _, rule := range r.rules {
		keyword := strings.ToLower(strings.TrimSpace(rule.Keyword))
		if keyword == "" {
			continue
		}
		doc, ok := docs[rule.League]
		if !ok {
			continue
		}
		for _, ev := range doc.Events {
			if !matches(ev, keyword) {
				continue
			}
			comp, _ := ev.Competition()
			return Match{
				Rule:    rule,
				Event:   ev,
				Summary: appgames.Build(ev, comp, teams.SportOther),
			}, true
		}
	}
	return Match{}, false
}

func matches(ev scoreboard.Event, keyword string) bool {
	return strings.Contains(strings.ToLower(ev.Name), keyword) ||
		strings.Contains(strings.ToLower(ev.ShortName), keyword)
}
