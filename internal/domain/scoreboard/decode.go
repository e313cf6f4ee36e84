package scoreboard

import (
	"bytes"
	"encoding/json"
	"errors"
)

// errNotObject is returned only for a top-level document that is not a JSON object.
var errNotObject = errors.New("scoreboard: document is not a JSON object")

// text decodes a JSON string leniently: numbers keep their literal text and
// any other value decodes as empty.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	var f FlexString
	_ = f.UnmarshalJSON(b)
	*t = text(f.Value)
	return nil
}

func isObject(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}

// decodeList decodes a JSON array. Any other value decodes as an empty list.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalJSON implements json.Unmarshaler. Only a non-object document fails;
// malformed fields inside it decode as absent.
func (d *Document) UnmarshalJSON(b []byte) error {
	*d = Document{}
	if !isObject(b) {
		return errNotObject
	}
	var raw struct {
		Events json.RawMessage `json:"events"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	events, err := decodeList[Event](raw.Events)
	if err != nil {
		return err
	}
	d.Events = events
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Event) UnmarshalJSON(b []byte) error {
	*e = Event{}
	if !isObject(b) {
		return nil
	}
	var raw struct {
		ID           FlexString      `json:"id"`
		Date         ESPNTime        `json:"date"`
		Name         text            `json:"name"`
		ShortName    text            `json:"shortName"`
		Status       Status          `json:"status"`
		Competitions json.RawMessage `json:"competitions"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	comps, err := decodeList[Competition](raw.Competitions)
	if err != nil {
		return err
	}
	*e = Event{
		ID:           raw.ID,
		Date:         raw.Date,
		Name:         string(raw.Name),
		ShortName:    string(raw.ShortName),
		Status:       raw.Status,
		Competitions: comps,
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Status) UnmarshalJSON(b []byte) error {
	*s = Status{}
	if !isObject(b) {
		return nil
	}
	var raw struct {
		Period       OptInt     `json:"period"`
		DisplayClock text       `json:"displayClock"`
		Type         StatusType `json:"type"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = Status{Period: raw.Period, DisplayClock: string(raw.DisplayClock), Type: raw.Type}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (st *StatusType) UnmarshalJSON(b []byte) error {
	*st = StatusType{}
	if !isObject(b) {
		return nil
	}
	var raw struct {
		State       text `json:"state"`
		ShortDetail text `json:"shortDetail"`
		Detail      text `json:"detail"`
		Description text `json:"description"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*st = StatusType{
		State:       string(raw.State),
		ShortDetail: string(raw.ShortDetail),
		Detail:      string(raw.Detail),
		Description: string(raw.Description),
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A situation that is not an
// object decodes as nil.
func (c *Competition) UnmarshalJSON(b []byte) error {
	*c = Competition{}
	if !isObject(b) {
		return nil
	}
	var raw struct {
		Competitors json.RawMessage `json:"competitors"`
		Situation   json.RawMessage `json:"situation"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	competitors, err := decodeList[Competitor](raw.Competitors)
	if err != nil {
		return err
	}
	c.Competitors = competitors
	if isObject(raw.Situation) {
		var sit Situation
		if err := json.Unmarshal(raw.Situation, &sit); err != nil {
			return err
		}
		c.Situation = &sit
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Competitor) UnmarshalJSON(b []byte) error {
	*c = Competitor{}
	if !isObject(b) {
		return nil
	}
	var raw struct {
		ID       FlexString `json:"id"`
		HomeAway text       `json:"homeAway"`
		Score    FlexString `json:"score"`
		Team     Team       `json:"team"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*c = Competitor{ID: raw.ID, HomeAway: string(raw.HomeAway), Score: raw.Score, Team: raw.Team}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Team) UnmarshalJSON(b []byte) error {
	*t = Team{}
	if !isObject(b) {
		return nil
	}
	var raw struct {
		ID           FlexString `json:"id"`
		Abbreviation text       `json:"abbreviation"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = Team{ID: raw.ID, Abbreviation: string(raw.Abbreviation)}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Situation) UnmarshalJSON(b []byte) error {
	*s = Situation{}
	if !isObject(b) {
		return nil
	}
	var raw struct {
		Down              OptInt     `json:"down"`
		Distance          OptInt     `json:"distance"`
		YardLine          OptInt     `json:"yardLine"`
		YardLineTerritory text       `json:"yardLineTerritory"`
		Possession        FlexString `json:"possession"`
		PossessionText    text       `json:"possessionText"`
		Inning            OptInt     `json:"inning"`
		InningHalf        text       `json:"inningHalf"`
		IsTopInning       OptBool    `json:"isTopInning"`
		Balls             OptInt     `json:"balls"`
		Strikes           OptInt     `json:"strikes"`
		Outs              OptInt     `json:"outs"`
		OnFirst           Occupied   `json:"onFirst"`
		OnSecond          Occupied   `json:"onSecond"`
		OnThird           Occupied   `json:"onThird"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = Situation{
		Down:              raw.Down,
		Distance:          raw.Distance,
		YardLine:          raw.YardLine,
		YardLineTerritory: string(raw.YardLineTerritory),
		Possession:        raw.Possession,
		PossessionText:    string(raw.PossessionText),
		Inning:            raw.Inning,
		InningHalf:        string(raw.InningHalf),
		IsTopInning:       raw.IsTopInning,
		Balls:             raw.Balls,
		Strikes:           raw.Strikes,
		Outs:              raw.Outs,
		OnFirst:           raw.OnFirst,
		OnSecond:          raw.OnSecond,
		OnThird:           raw.OnThird,
	}
	return nil
}
