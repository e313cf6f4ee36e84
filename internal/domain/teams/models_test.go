package teams

import (
	"reflect"
	"testing"
)

func TestParseSportKind(t *testing.T) {
	cases := map[string]SportKind{
		"football":   SportFootball,
		"baseball":   SportBaseball,
		"hockey":     SportOther,
		"":           SportOther,
		"Football":   SportOther,
		"basketball": SportOther,
	}
	for raw, want := range cases {
		if got := ParseSportKind(raw); got != want {
			t.Fatalf("ParseSportKind(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestFollowedTeamJSONTags(t *testing.T) {
	teamType := reflect.TypeOf(FollowedTeam{})
	expected := map[string]string{
		"Abbreviation": "abbreviation",
		"ViewKey":      "viewKey",
		"League":       "league",
		"Sport":        "sport",
	}
	for name, tag := range expected {
		field, ok := teamType.FieldByName(name)
		if !ok {
			t.Fatalf("missing field %s", name)
		}
		if got := field.Tag.Get("json"); got != tag {
			t.Fatalf("field %s expected json tag %s, got %s", name, tag, got)
		}
	}
}
