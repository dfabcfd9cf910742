// Package darwin models the decoded shape of Darwin Push Port JSON
// documents as delivered by the feed. The feed is loosely shaped: fields
// that are logically lists arrive as a single object when there is one
// element, times arrive as either a bare "HH:MM" string or an object
// carrying the time plus status metadata, and the platform field mixes the
// platform token with confirmation metadata. Each of those shapes is
// normalized here, at the boundary, into an explicit variant type.
package darwin

import (
	"bytes"
	"encoding/json"
	"regexp"
	"sort"
)

// Pport is the top-level Push Port document.
type Pport struct {
	UR *UpdateResponse `json:"uR"`
}

// UpdateResponse carries the update members of a Push Port document. Any
// combination of members may be present on one document.
type UpdateResponse struct {
	TS       TrainStatusList    `json:"TS"`
	Schedule ScheduleList       `json:"schedule"`
	OW       StationMessageList `json:"OW"`
}

// TrainStatus is a real-time running update for one train run.
type TrainStatus struct {
	RID        string       `json:"rid"` // run identifier, unique per day
	UID        string       `json:"uid"`
	SSD        string       `json:"ssd"` // scheduled start date
	LateReason FlexText     `json:"LateReason"`
	Locations  LocationList `json:"Location"`
}

// Location is one calling point within a TrainStatus update.
type Location struct {
	TPL  string    `json:"tpl"` // TIPLOC location code
	PTA  string    `json:"pta"` // public arrival
	PTD  string    `json:"ptd"` // public departure
	WTA  string    `json:"wta"` // working arrival
	WTD  string    `json:"wtd"` // working departure
	Arr  TimeValue `json:"arr"` // actual/estimated arrival
	Dep  TimeValue `json:"dep"` // actual/estimated departure
	Plat Platform  `json:"plat"`
	Can  Flag      `json:"can"` // cancellation indicator
}

// Schedule is a timetable update for one train run.
type Schedule struct {
	RID     string           `json:"rid"`
	UID     string           `json:"uid"`
	SSD     string           `json:"ssd"`
	TrainID string           `json:"trainId"`
	TOC     string           `json:"toc"` // train operating company
	Origin  *CallingPoint    `json:"OR"`
	Inter   CallingPointList `json:"IP"`
	Dest    *CallingPoint    `json:"DT"`
}

// CallingPoints returns the ordered calling-point sequence
// origin, intermediates, destination; nil members are skipped.
func (s *Schedule) CallingPoints() []CallingPoint {
	points := make([]CallingPoint, 0, len(s.Inter)+2)
	if s.Origin != nil {
		points = append(points, *s.Origin)
	}
	points = append(points, s.Inter...)
	if s.Dest != nil {
		points = append(points, *s.Dest)
	}
	return points
}

// DestinationTPL returns the raw code of the schedule's destination point,
// or "" when the schedule carries none.
func (s *Schedule) DestinationTPL() string {
	if s.Dest != nil {
		return s.Dest.TPL
	}
	return ""
}

// CallingPoint is one scheduled stop within a Schedule.
type CallingPoint struct {
	TPL      string   `json:"tpl"`
	PTA      string   `json:"pta"`
	PTD      string   `json:"ptd"`
	WTA      string   `json:"wta"`
	WTD      string   `json:"wtd"`
	Plat     Platform `json:"plat"`
	Activity string   `json:"act"`
}

// StationMessage is a free-text service announcement for one or more
// stations.
type StationMessage struct {
	Stations StationRefList `json:"Station"`
	Message  FlexText       `json:"Msg"`
	Severity FlexText       `json:"Severity"`
}

// StationRef names a station a message applies to.
type StationRef struct {
	CRS string `json:"crs"`
}

// oneOrMany unmarshals a field that is a single object when it has one
// element and an array otherwise.
func oneOrMany[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	if data[0] == '[' {
		var list []T
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, err
	}
	return []T{one}, nil
}

// TrainStatusList accepts a single TrainStatus or an array of them.
type TrainStatusList []TrainStatus

func (l *TrainStatusList) UnmarshalJSON(data []byte) error {
	list, err := oneOrMany[TrainStatus](data)
	if err != nil {
		return err
	}
	*l = list
	return nil
}

// ScheduleList accepts a single Schedule or an array of them.
type ScheduleList []Schedule

func (l *ScheduleList) UnmarshalJSON(data []byte) error {
	list, err := oneOrMany[Schedule](data)
	if err != nil {
		return err
	}
	*l = list
	return nil
}

// StationMessageList accepts a single StationMessage or an array of them.
type StationMessageList []StationMessage

func (l *StationMessageList) UnmarshalJSON(data []byte) error {
	list, err := oneOrMany[StationMessage](data)
	if err != nil {
		return err
	}
	*l = list
	return nil
}

// LocationList accepts a single Location or an array of them.
type LocationList []Location

func (l *LocationList) UnmarshalJSON(data []byte) error {
	list, err := oneOrMany[Location](data)
	if err != nil {
		return err
	}
	*l = list
	return nil
}

// StationRefList accepts a single StationRef or an array of them.
type StationRefList []StationRef

func (l *StationRefList) UnmarshalJSON(data []byte) error {
	list, err := oneOrMany[StationRef](data)
	if err != nil {
		return err
	}
	*l = list
	return nil
}

// CallingPointList accepts a single CallingPoint or an array of them.
type CallingPointList []CallingPoint

func (l *CallingPointList) UnmarshalJSON(data []byte) error {
	list, err := oneOrMany[CallingPoint](data)
	if err != nil {
		return err
	}
	*l = list
	return nil
}

// Flag is a boolean-ish feed field that arrives as the string "true", a
// bare JSON bool, or is absent.
type Flag string

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")) {
		*f = Flag(data)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = Flag(s)
	return nil
}

// Bool reports whether the flag carries the literal "true".
func (f Flag) Bool() bool { return f == "true" }

// FlexText is a text field that may arrive as a string, a number (reason
// codes), or an object wrapping the text under a reason or CDATA key.
type FlexText string

func (t *FlexText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = FlexText(s)
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		for _, key := range []string{"reason", "#text", "#cdata", "p"} {
			if inner, ok := obj[key]; ok {
				return t.UnmarshalJSON(inner)
			}
		}
		*t = ""
	default:
		// Bare number, e.g. a Darwin late-reason code.
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*t = FlexText(n.String())
	}
	return nil
}

func (t FlexText) String() string { return string(t) }

// TimeValue is a live time field: either a bare "HH:MM" string or an
// object carrying an actual ("at") or estimated ("et") time plus source
// metadata.
type TimeValue struct {
	Text string // set when the raw value was a plain string
	At   string // actual time
	ET   string // estimated time
	Src  string
}

func (v *TimeValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = TimeValue{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TimeValue{Text: s}
		return nil
	}
	var obj struct {
		At  string `json:"at"`
		ET  string `json:"et"`
		Src string `json:"src"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*v = TimeValue{At: obj.At, ET: obj.ET, Src: obj.Src}
	return nil
}

// IsZero reports whether the field was absent from the feed.
func (v TimeValue) IsZero() bool {
	return v.Text == "" && v.At == "" && v.ET == ""
}

// Display returns the customer-facing rendering: the actual time for
// structured values, otherwise the bare string. May be empty.
func (v TimeValue) Display() string {
	if v.Text != "" {
		return v.Text
	}
	return v.At
}

// Best returns the most useful time for calculations: actual, then
// estimated, then the bare string.
func (v TimeValue) Best() string {
	if v.At != "" {
		return v.At
	}
	if v.ET != "" {
		return v.ET
	}
	return v.Text
}

// platTokenRe matches a bare platform token: digits optionally followed by
// one letter, or a single letter.
var platTokenRe = regexp.MustCompile(`^[0-9]+[A-Za-z]?$|^[A-Za-z]$`)

// Platform is the heterogeneous platform field: either a plain token or an
// object of named sub-fields where the token usually lives under the empty
// key, alongside metadata such as the confirmation source.
type Platform struct {
	Text   string // set when the raw value was a plain string
	Fields map[string]string
}

func (p *Platform) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = Platform{}
		return nil
	}
	if data[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		fields := make(map[string]string, len(obj))
		for k, raw := range obj {
			fields[k] = scalarString(raw)
		}
		*p = Platform{Fields: fields}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = Platform{Text: s}
	return nil
}

// MarshalJSON round-trips the raw shape for diagnostic views.
func (p Platform) MarshalJSON() ([]byte, error) {
	if p.Fields != nil {
		return json.Marshal(p.Fields)
	}
	if p.Text != "" {
		return json.Marshal(p.Text)
	}
	return []byte("null"), nil
}

// IsZero reports whether the field was absent from the feed.
func (p Platform) IsZero() bool {
	return p.Text == "" && p.Fields == nil
}

// Display reduces the field to a single display token. For structured
// values the token is taken from the default (empty-key) sub-field, then a
// sub-field named "plat", then the first sub-field in key order whose value
// looks like a platform token. "-" when nothing usable is present.
func (p Platform) Display() string {
	if p.Text != "" {
		return p.Text
	}
	if p.Fields == nil {
		return "-"
	}
	if v := p.Fields[""]; v != "" {
		return v
	}
	if v := p.Fields["plat"]; v != "" {
		return v
	}
	keys := make([]string, 0, len(p.Fields))
	for k := range p.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if platTokenRe.MatchString(p.Fields[k]) {
			return p.Fields[k]
		}
	}
	return "-"
}

// scalarString renders a raw JSON scalar as a string; objects and arrays
// render empty.
func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case 't', 'f':
		return string(raw)
	case '{', '[', 'n':
		return ""
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return ""
		}
		return n.String()
	}
}
