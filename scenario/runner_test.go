package scenario_test

import (
	"testing"

	"github.com/codifire/designpatterns/internal/metrics"
	"github.com/codifire/designpatterns/scenario"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var demoLines = []string{
	"George: Monalisa",
	"Nicolas: Monalisa",
	"Brad: iPhoneX",
	"Nicolas: iPhoneX",
}

func TestRun_DefaultObserver(t *testing.T) {
	var live []string
	r := scenario.Runner{OnLine: func(c, m string) { live = append(live, c+": "+m) }}

	tr, err := r.Run(scenario.Default())
	require.NoError(t, err)
	assert.Equal(t, demoLines, tr.Lines())
	assert.Equal(t, demoLines, live)
	assert.Equal(t, 4, tr.Deliveries())
}

func TestRun_DefaultDelegate(t *testing.T) {
	tr, err := scenario.Runner{Mode: scenario.ModeDelegate}.Run(scenario.Default())
	require.NoError(t, err)
	assert.Equal(t, scenario.ModeDelegate, tr.Mode)
	assert.Equal(t, demoLines, tr.Lines())
}

func TestRun_UnmatchedPolicy(t *testing.T) {
	tr, err := scenario.Runner{Policy: "unmatched"}.Run(scenario.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"George: Monalisa", "Brad: iPhoneX"}, tr.Lines())
}

func TestRun_RegisterAndRemove(t *testing.T) {
	for _, mode := range []string{scenario.ModeObserver, scenario.ModeDelegate} {
		t.Run(mode, func(t *testing.T) {
			sc, err := scenario.Parse([]byte(`
name: churn
mode: ` + mode + `
clients:
  - name: Ann
    channels: [Arts]
  - name: Bob
steps:
  - {action: register, channel: Arts, client: Bob}
  - {action: push, channel: Arts, message: one}
  - {action: remove, channel: Arts, client: Ann}
  - {action: remove, channel: Arts, client: Ann}
  - {action: push, channel: Arts, message: two}
`))
			require.NoError(t, err)

			tr, err := scenario.Runner{}.Run(sc)
			require.NoError(t, err)
			assert.Equal(t, []string{"Ann: one", "Bob: one", "Bob: two"}, tr.Lines())

			require.Len(t, tr.Entries, 5)
			assert.True(t, tr.Entries[2].Removed)
			assert.False(t, tr.Entries[3].Removed)
			assert.Equal(t, 2, tr.Entries[1].Delivered)
			assert.Equal(t, 1, tr.Entries[4].Delivered)
		})
	}
}

func TestRun_InvalidOverride(t *testing.T) {
	_, err := scenario.Runner{Mode: "smoke-signal"}.Run(scenario.Default())
	assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
}

func TestRun_Recorder(t *testing.T) {
	prom := metrics.NewProm()
	_, err := scenario.Runner{Recorder: prom}.Run(scenario.Default())
	require.NoError(t, err)

	snap, err := prom.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 1.0, snap[`observer_pushes_total{channel="Arts"}`])
	assert.Equal(t, 2.0, snap[`observer_deliveries_total{channel="Anything"}`])
}

func TestTranscript_JSON(t *testing.T) {
	tr, err := scenario.Runner{}.Run(scenario.Default())
	require.NoError(t, err)

	data, err := tr.JSON()
	require.NoError(t, err)

	doc := gjson.ParseBytes(data)
	_, err = uuid.Parse(doc.Get("id").String())
	assert.NoError(t, err)
	assert.Equal(t, "observer-demo", doc.Get("name").String())
	assert.Equal(t, "always", doc.Get("policy").String())
	assert.Equal(t, int64(2), doc.Get("entries.#").Int())
	assert.Equal(t, "Monalisa", doc.Get("entries.0.message").String())
	assert.Equal(t, "Nicolas", doc.Get("entries.1.lines.1.client").String())
	assert.Equal(t, []string{"Arts", "Gadgets", "Anything"}, []string{
		doc.Get("channels.0").String(), doc.Get("channels.1").String(), doc.Get("channels.2").String(),
	})
}
