package vega_test

import (
	"encoding/json"
	"testing"

	"github.com/ActiveChai/vega-lite/internal/vega"
)

func TestProjectionMarshalOrdersNameFirst(t *testing.T) {
	p := vega.Projection{
		Name: "view_projection",
		Props: map[string]any{
			"type": "albersUsa",
			"fit":  vega.SignalRef{Signal: "view_geojson_0"},
			"size": vega.SignalRef{Signal: "[width, height]"},
		},
	}
	got, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"name":"view_projection",` +
		`"fit":{"signal":"view_geojson_0"},` +
		`"size":{"signal":"[width, height]"},` +
		`"type":"albersUsa"}`
	if string(got) != want {
		t.Fatalf("Marshal = %s\nwant      %s", got, want)
	}
}

func TestProjectionMarshalNoProps(t *testing.T) {
	got, err := json.Marshal(vega.Projection{Name: "p"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `{"name":"p"}` {
		t.Fatalf("Marshal = %s", got)
	}
}
