package darwin

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrap(t *testing.T, inner string) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"bytes": inner})
	require.NoError(t, err)
	return raw
}

func TestDecodeEnvelope(t *testing.T) {
	t.Run("unwraps inner document", func(t *testing.T) {
		doc, err := DecodeEnvelope(wrap(t, `{"uR":{}}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"uR":{}}`, string(doc))
	})

	t.Run("missing bytes field", func(t *testing.T) {
		_, err := DecodeEnvelope([]byte(`{"other":"x"}`))
		assert.ErrorIs(t, err, ErrEmptyEnvelope)
	})

	t.Run("malformed outer JSON", func(t *testing.T) {
		_, err := DecodeEnvelope([]byte(`{not json`))
		assert.Error(t, err)
	})

	t.Run("malformed inner JSON", func(t *testing.T) {
		_, err := Decode(wrap(t, `{broken`))
		assert.Error(t, err)
	})
}

func TestTrainStatusSingleOrList(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		pp, err := Decode(wrap(t, `{"uR":{"TS":{"rid":"r1","Location":{"tpl":"PNGEW","ptd":"08:00"}}}}`))
		require.NoError(t, err)
		require.NotNil(t, pp.UR)
		require.Len(t, pp.UR.TS, 1)
		require.Len(t, pp.UR.TS[0].Locations, 1)
		assert.Equal(t, "PNGEW", pp.UR.TS[0].Locations[0].TPL)
	})

	t.Run("array", func(t *testing.T) {
		pp, err := Decode(wrap(t, `{"uR":{"TS":[{"rid":"r1"},{"rid":"r2"}]}}`))
		require.NoError(t, err)
		require.Len(t, pp.UR.TS, 2)
		assert.Equal(t, "r2", pp.UR.TS[1].RID)
	})
}

func TestScheduleCallingPoints(t *testing.T) {
	raw := `{
		"uR":{"schedule":{
			"rid":"r9","uid":"P123","ssd":"2026-08-28","toc":"SN",
			"OR":{"tpl":"VICTRIC","ptd":"07:40"},
			"IP":{"tpl":"PNGEW","pta":"07:58","ptd":"08:00","plat":"2"},
			"DT":{"tpl":"CRSTLPL","pta":"08:10"}
		}}
	}`
	pp, err := Decode(wrap(t, raw))
	require.NoError(t, err)
	require.Len(t, pp.UR.Schedule, 1)

	sc := pp.UR.Schedule[0]
	points := sc.CallingPoints()
	require.Len(t, points, 3)
	assert.Equal(t, "VICTRIC", points[0].TPL)
	assert.Equal(t, "PNGEW", points[1].TPL)
	assert.Equal(t, "CRSTLPL", points[2].TPL)
	assert.Equal(t, "CRSTLPL", sc.DestinationTPL())
	assert.Equal(t, "2", points[1].Plat.Display())
}

func TestTimeValueShapes(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		display string
		best    string
	}{
		{"plain string", `"08:12"`, "08:12", "08:12"},
		{"actual time object", `{"at":"08:12","src":"TD"}`, "08:12", "08:12"},
		{"estimate only", `{"et":"08:15","src":"Darwin"}`, "", "08:15"},
		{"null", `null`, "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var v TimeValue
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &v))
			assert.Equal(t, tc.display, v.Display())
			assert.Equal(t, tc.best, v.Best())
		})
	}
}

func TestPlatformDisplay(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain string", `"2"`, "2"},
		{"default sub-field", `{"platsrc":"A","conf":true,"":"2"}`, "2"},
		{"named plat sub-field", `{"platsrc":"P","plat":"1"}`, "1"},
		{"pattern fallback", `{"cisPlatsup":"true","platsrc":"B"}`, "B"},
		{"digit-letter token", `{"cisPlatsup":"true","source":"12A"}`, "12A"},
		{"nothing usable", `{"cisPlatsup":"true","conf":"false"}`, "-"},
		{"null", `null`, "-"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p Platform
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &p))
			assert.Equal(t, tc.want, p.Display())
		})
	}
}

func TestFlagShapes(t *testing.T) {
	var loc Location
	require.NoError(t, json.Unmarshal([]byte(`{"tpl":"PNGEW","can":"true"}`), &loc))
	assert.True(t, loc.Can.Bool())

	require.NoError(t, json.Unmarshal([]byte(`{"tpl":"PNGEW","can":true}`), &loc))
	assert.True(t, loc.Can.Bool())

	require.NoError(t, json.Unmarshal([]byte(`{"tpl":"PNGEW","can":"false"}`), &loc))
	assert.False(t, loc.Can.Bool())

	require.NoError(t, json.Unmarshal([]byte(`{"tpl":"PNGEW"}`), &loc))
	assert.False(t, loc.Can.Bool())
}

func TestFlexTextShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"string", `"late running"`, "late running"},
		{"reason code number", `887`, "887"},
		{"reason object", `{"reason":887,"tiploc":"SYDENHM"}`, "887"},
		{"cdata object", `{"#cdata":"Trains delayed"}`, "Trains delayed"},
		{"null", `null`, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ft FlexText
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &ft))
			assert.Equal(t, tc.want, ft.String())
		})
	}
}

func TestStationMessageShapes(t *testing.T) {
	raw := `{"uR":{"OW":{"Station":[{"crs":"PNE"},{"crs":"ZZZ"}],"Msg":"Buses replace trains","Severity":1}}}`
	pp, err := Decode(wrap(t, raw))
	require.NoError(t, err)
	require.Len(t, pp.UR.OW, 1)

	ow := pp.UR.OW[0]
	require.Len(t, ow.Stations, 2)
	assert.Equal(t, "PNE", ow.Stations[0].CRS)
	assert.Equal(t, "Buses replace trains", ow.Message.String())
	assert.Equal(t, "1", ow.Severity.String())
}
