package content

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSplitLinesRoundTrip(t *testing.T) {
	cases := [][]string{
		{"Kubernetes Ops", "GitHub Actions", "Terraform"},
		{"one"},
		{},
	}
	for _, items := range cases {
		got := SplitLines(JoinLines(items))
		if !reflect.DeepEqual(got, items) {
			t.Errorf("round trip %v: got %v", items, got)
		}
	}
}

func TestSplitLinesTrimsAndDropsBlanks(t *testing.T) {
	got := SplitLines("  first \r\n\n\t\nsecond\n  ")
	want := []string{"first", "second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if SplitLines("") == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestMetricsRoundTrip(t *testing.T) {
	metrics := []Metric{
		{Value: "40+", Label: "services on shared pipelines"},
		{Value: "15", Label: "K8s clusters with SLOs"},
		{Value: "<20m", Label: "mean recovery target"},
	}
	got := ParseMetrics(FormatMetrics(metrics))
	if !reflect.DeepEqual(got, metrics) {
		t.Errorf("round trip: got %v, want %v", got, metrics)
	}
}

func TestParseMetricLabelOptional(t *testing.T) {
	m, ok := ParseMetric("10")
	if !ok || m.Value != "10" || m.Label != "" {
		t.Errorf("got %v ok=%v", m, ok)
	}
	m, ok = ParseMetric(" 10 | years ")
	if !ok || m.Value != "10" || m.Label != "years" {
		t.Errorf("got %v ok=%v", m, ok)
	}
	if _, ok := ParseMetric("   "); ok {
		t.Error("blank line should not parse")
	}
	// A value-less metric survives a round trip too.
	got := ParseMetrics(FormatMetrics([]Metric{{Value: "10"}}))
	if !reflect.DeepEqual(got, []Metric{{Value: "10"}}) {
		t.Errorf("got %v", got)
	}
}

func TestLineListAcceptsArrayAndText(t *testing.T) {
	var fromArray LineList
	if err := json.Unmarshal([]byte(`[" X ", "", "Y"]`), &fromArray); err != nil {
		t.Fatal(err)
	}
	var fromText LineList
	if err := json.Unmarshal([]byte(`"X\n\nY\n"`), &fromText); err != nil {
		t.Fatal(err)
	}
	want := LineList{"X", "Y"}
	if !reflect.DeepEqual(fromArray, want) {
		t.Errorf("array form: got %v", fromArray)
	}
	if !reflect.DeepEqual(fromText, want) {
		t.Errorf("text form: got %v", fromText)
	}

	var fromNull LineList
	if err := json.Unmarshal([]byte(`null`), &fromNull); err != nil {
		t.Fatal(err)
	}
	if fromNull != nil {
		t.Errorf("null: got %v", fromNull)
	}

	var bad LineList
	if err := json.Unmarshal([]byte(`42`), &bad); err == nil {
		t.Error("expected error for numeric input")
	}
}

func TestMetricListAcceptsMixedShapes(t *testing.T) {
	payload := `[{"value":"10","label":"years"}, "15|clusters", {"value":"  ","label":""}]`
	var metrics MetricList
	if err := json.Unmarshal([]byte(payload), &metrics); err != nil {
		t.Fatal(err)
	}
	want := MetricList{{Value: "10", Label: "years"}, {Value: "15", Label: "clusters"}}
	if !reflect.DeepEqual(metrics, want) {
		t.Errorf("got %v, want %v", metrics, want)
	}

	var fromText MetricList
	if err := json.Unmarshal([]byte(`"10|years\n15|clusters"`), &fromText); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fromText, want) {
		t.Errorf("text form: got %v, want %v", fromText, want)
	}
}

func TestParseImageListShapes(t *testing.T) {
	cases := []struct {
		name   string
		value  string
		legacy string
		want   []string
	}{
		{"json array", `["a.png","b.png"]`, "", []string{"a.png", "b.png"}},
		{"empty json array", `[]`, "legacy.png", []string{}},
		{"empty with legacy", "", "legacy.png", []string{"legacy.png"}},
		{"empty no legacy", "", "", []string{}},
		{"malformed falls back to separators", "a.png, b.png\nc.png", "", []string{"a.png", "b.png", "c.png"}},
		{"valid json non-array yields nothing", `"a.png"`, "", []string{}},
		{"valid json object yields nothing", `{"url":"a.png"}`, "", []string{}},
		{"blank entries dropped", `[" a.png ",""]`, "", []string{"a.png"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseImageList(tc.value, tc.legacy)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEncodeImageList(t *testing.T) {
	if got := EncodeImageList(nil); got != "[]" {
		t.Errorf("nil: got %q", got)
	}
	if got := EncodeImageList([]string{" a.png ", "", "b.png"}); got != `["a.png","b.png"]` {
		t.Errorf("got %q", got)
	}
}

func TestHeroRequestSnakeCaseAliases(t *testing.T) {
	payload := `{
		"tagline":" A ","headline":"B","subheading":"C",
		"primary_label":"Go","primary_url":"https://example.com",
		"secondary_label":"Alt","secondary_url":"#contact"
	}`
	var req HeroRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatal(err)
	}
	req.Normalize()
	if req.Tagline != "A" {
		t.Errorf("tagline not trimmed: %q", req.Tagline)
	}
	if req.PrimaryLabel != "Go" || req.PrimaryURL != "https://example.com" {
		t.Errorf("primary alias not applied: %q %q", req.PrimaryLabel, req.PrimaryURL)
	}
	if req.SecondaryLabel != "Alt" || req.SecondaryURL != "#contact" {
		t.Errorf("secondary alias not applied: %q %q", req.SecondaryLabel, req.SecondaryURL)
	}
}
