package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/cyb3rnet/xhtml/pkg/document"
	"github.com/cyb3rnet/xhtml/pkg/markup"
)

func TestCollectorRecordsDocumentEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(WithRegistry(reg))

	d, err := document.New(document.Params{Lang: "en", Encoding: "utf-8"}, document.WithObserver(c))
	if err != nil {
		t.Fatal(err)
	}
	d.Meta(markup.Name("a"))
	d.Meta(markup.Name("b"))
	head := document.Must(d.Head())
	body := document.Must(d.Body("x"))
	if _, err := d.P(1); err == nil {
		t.Fatal("P(1) should fail")
	}
	if _, err := d.Doc(head, body); err != nil {
		t.Fatal(err)
	}
	out, err := d.Generate()
	if err != nil {
		t.Fatal(err)
	}

	if got := testutil.ToFloat64(c.nodesCreated.WithLabelValues("meta")); got != 1 {
		t.Errorf("nodes_created_total{tag=meta} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.nodesMerged.WithLabelValues("meta")); got != 1 {
		t.Errorf("nodes_merged_total{tag=meta} = %v, want 1", got)
	}
	// Doc creates html and then merges into it.
	if got := testutil.ToFloat64(c.nodesMerged.WithLabelValues("html")); got != 1 {
		t.Errorf("nodes_merged_total{tag=html} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.documentsGenerated); got != 1 {
		t.Errorf("documents_generated_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.errors.WithLabelValues("E002")); got != 1 {
		t.Errorf("errors_total{code=E002} = %v, want 1", got)
	}

	expected := `
# HELP xhtml_documents_generated_total Total number of documents generated
# TYPE xhtml_documents_generated_total counter
xhtml_documents_generated_total 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "xhtml_documents_generated_total"); err != nil {
		t.Error(err)
	}
	if len(out) == 0 {
		t.Error("empty document")
	}
}

func TestCollectorOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(
		WithRegistry(reg),
		WithNamespace("site"),
		WithSubsystem("docs"),
		WithConstLabels(prometheus.Labels{"env": "test"}),
		WithBuckets([]float64{10, 100}),
	)
	c.Failed("")
	c.DocumentGenerated(50)

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{"site_docs_errors_total", "site_docs_document_bytes", "site_docs_documents_generated_total"} {
		if !names[want] {
			t.Errorf("missing metric family %s (have %v)", want, names)
		}
	}
	if got := testutil.ToFloat64(c.errors.WithLabelValues("unknown")); got != 1 {
		t.Errorf("errors_total{code=unknown} = %v", got)
	}
}
