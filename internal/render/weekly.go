// Package render produces the HTML pages and the terminal view of the
// digest. It only formats: all numbers arrive precomputed.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/abelbrown/radar/internal/digest"
)

// weeklyView is the template payload for the weekly page.
type weeklyView struct {
	Period     string
	N          int
	HalfLife   float64
	EntHHI     string
	EntTop     string
	CatHHI     string
	CatTop     string
	Entities   []entityLine
	Categories []categoryLine
	Risers     []rotationLine
	Fallers    []rotationLine
	NewEnts    []entityLine
	Breakouts  []entityLine
	Imps       []string
	EntClusters []clusterView
	CatClusters []clusterView
}

type entityLine struct {
	Name, Spark, Meta string
}

type categoryLine struct {
	Name, Spark, Meta string
}

type rotationLine struct {
	Name, Meta string
}

type clusterView struct {
	Title string
	Items []clusterItem
}

type clusterItem struct {
	Title, URL, Source, Category string
}

// Weekly renders the digest as the weekly HTML page.
func Weekly(d *digest.Digest) (string, error) {
	if d.Empty() {
		return "<html><body><p>No data.</p></body></html>", nil
	}

	v := weeklyView{
		Period:   fmt.Sprintf("%s → %s", d.Days[0], d.Days[len(d.Days)-1]),
		N:        d.N,
		HalfLife: d.HalfLife,
		EntHHI:   fmt.Sprintf("%.3f", d.EntityConcentration.HHI),
		EntTop:   fmt.Sprintf("%.1f%%", d.EntityConcentration.TopShare*100),
		CatHHI:   fmt.Sprintf("%.3f", d.CategoryConcentration.HHI),
		CatTop:   fmt.Sprintf("%.1f%%", d.CategoryConcentration.TopShare*100),
		Imps:     d.Implications,
	}

	for _, r := range capRows(d.Entities, 12) {
		v.Entities = append(v.Entities, entityLine{
			Name:  r.Name,
			Spark: Spark(r.Series),
			Meta:  entityMeta(r),
		})
	}
	for i, r := range d.Categories {
		if i >= 10 {
			break
		}
		v.Categories = append(v.Categories, categoryLine{
			Name:  r.Name,
			Spark: Spark(r.Series),
			Meta: fmt.Sprintf("share_slope %.3f · w %.2f · total %d · streak %d",
				r.ShareSlope, r.WeightedTotal, r.Total, r.Streak),
		})
	}
	for _, r := range d.Risers {
		v.Risers = append(v.Risers, rotationLine{Name: r.Name, Meta: rotationMeta(r)})
	}
	for _, r := range d.Fallers {
		v.Fallers = append(v.Fallers, rotationLine{Name: r.Name, Meta: rotationMeta(r)})
	}
	for _, r := range d.NewEntrants {
		v.NewEnts = append(v.NewEnts, entityLine{Name: r.Name, Spark: Spark(r.Series), Meta: entityMeta(r)})
	}
	for _, r := range d.Breakouts {
		v.Breakouts = append(v.Breakouts, entityLine{Name: r.Name, Spark: Spark(r.Series), Meta: entityMeta(r)})
	}

	v.EntClusters = clusterViews(d.EntityClusters, "")
	v.CatClusters = clusterViews(d.CategoryClusters, "Category: ")

	var b strings.Builder
	if err := weeklyTmpl.Execute(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func capRows(rows []digest.MetricRow, n int) []digest.MetricRow {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}

func entityMeta(r digest.MetricRow) string {
	return fmt.Sprintf("w %.2f · Δ %.2f · streak %d · total %d",
		r.WeightedTotal, r.Delta, r.Streak, r.Total)
}

func rotationMeta(r digest.Rotation) string {
	return fmt.Sprintf("share %.2f%% → %.2f%% (Δ %+.2f%%)",
		r.Early*100, r.Recent*100, r.Delta*100)
}

func clusterViews(clusters []digest.Cluster, prefix string) []clusterView {
	var out []clusterView
	for _, c := range clusters {
		cv := clusterView{Title: prefix + c.Name}
		for _, it := range c.Items {
			cat := strings.TrimSpace(it.Primary)
			if cat == "" {
				cat = "misc"
			}
			cv.Items = append(cv.Items, clusterItem{
				Title:    strings.TrimSpace(it.Title),
				URL:      it.Href(),
				Source:   strings.TrimSpace(it.Source),
				Category: cat,
			})
		}
		out = append(out, cv)
	}
	return out
}

var weeklyTmpl = template.Must(template.New("weekly").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>Weekly Radar · {{.Period}}</title>
  <style>
    body { font-family: system-ui, -apple-system, Segoe UI, Roboto, Arial, sans-serif; margin:0; background:#0b0e14; color:#e6edf3; }
    header { padding:20px; border-bottom:1px solid #222; background:#0b0e14; position:sticky; top:0; z-index:5; }
    .wrap { max-width:1100px; margin:0 auto; padding:18px; }
    .grid { display:grid; grid-template-columns:1fr 1fr; gap:14px; }
    .card { background:#0f1420; border:1px solid #1f2a3a; border-radius:14px; padding:14px; }
    h1 { margin:0 0 6px 0; font-size:18px; }
    h2 { margin:0 0 10px 0; font-size:15px; color:#cbd5e1; }
    ul { margin:0; padding-left:18px; }
    li { margin:6px 0; line-height:1.25rem; }
    a { color:#8ab4f8; text-decoration:none; }
    a:hover { text-decoration:underline; }
    .k { font-weight:600; }
    .s { font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace; margin-left:8px; }
    .m { color:#9aa4b2; margin-left:8px; font-size:12px; }
    .pill { display:inline-block; padding:2px 8px; border:1px solid #1f2a3a; border-radius:999px; color:#9aa4b2; font-size:12px; margin-right:8px; }
    .metrics { margin-top:8px; color:#9aa4b2; font-size:12px; }
    @media (max-width:900px) { .grid { grid-template-columns:1fr; } }
  </style>
</head>
<body>
<header>
  <div class="wrap">
    <h1>Weekly Radar · {{.Period}}</h1>
    <div class="metrics">
      <span class="pill">window: {{.N}} days</span>
      <span class="pill">recency half-life: {{.HalfLife}}d</span>
      <span class="pill">ent HHI: {{.EntHHI}} (top3 {{.EntTop}})</span>
      <span class="pill">cat HHI: {{.CatHHI}} (top3 {{.CatTop}})</span>
    </div>
  </div>
</header>

<main class="wrap">
  <div class="grid">
    <section class="card">
      <h2>Entities · momentum (weighted)</h2>
      <ul>{{range .Entities}}<li><span class="k">{{.Name}}</span> <span class="s">{{.Spark}}</span><span class="m">{{.Meta}}</span></li>{{else}}<li>No data</li>{{end}}</ul>
    </section>
    <section class="card">
      <h2>Categories · share momentum</h2>
      <ul>{{range .Categories}}<li><span class="k">{{.Name}}</span> <span class="s">{{.Spark}}</span><span class="m">{{.Meta}}</span></li>{{else}}<li>No data</li>{{end}}</ul>
    </section>
  </div>

  <div class="grid" style="margin-top:14px">
    <section class="card">
      <h2>Narrative rotation · rising</h2>
      <ul>{{range .Risers}}<li><span class="k">{{.Name}}</span> <span class="m">{{.Meta}}</span></li>{{else}}<li>No data</li>{{end}}</ul>
    </section>
    <section class="card">
      <h2>Narrative rotation · falling</h2>
      <ul>{{range .Fallers}}<li><span class="k">{{.Name}}</span> <span class="m">{{.Meta}}</span></li>{{else}}<li>No data</li>{{end}}</ul>
    </section>
  </div>

  <section class="card" style="margin-top:14px">
    <h2>Implications</h2>
    <ul>{{range .Imps}}<li>{{.}}</li>{{end}}</ul>
  </section>

  <div class="grid" style="margin-top:14px">
    <section class="card">
      <h2>New entrants (recent days)</h2>
      <ul>{{range .NewEnts}}<li><span class="k">{{.Name}}</span> <span class="s">{{.Spark}}</span><span class="m">{{.Meta}}</span></li>{{else}}<li>No data</li>{{end}}</ul>
    </section>
    <section class="card">
      <h2>Breakouts (recent spike)</h2>
      <ul>{{range .Breakouts}}<li><span class="k">{{.Name}}</span> <span class="s">{{.Spark}}</span><span class="m">{{.Meta}}</span></li>{{else}}<li>No data</li>{{end}}</ul>
    </section>
  </div>

  <section style="margin-top:14px">
    <h2 style="color:#cbd5e1; font-size:15px; margin:0 0 10px 0;">Clusters · top entities</h2>
    <div class="grid">{{range .EntClusters}}<section class="card"><h2>{{.Title}}</h2><ul>{{range .Items}}<li>{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a>{{else}}{{.Title}}{{end}} <span class="m">[{{.Source}}] [{{.Category}}]</span></li>{{end}}</ul></section>{{end}}</div>
  </section>

  <section style="margin-top:14px">
    <h2 style="color:#cbd5e1; font-size:15px; margin:0 0 10px 0;">Clusters · top categories</h2>
    <div class="grid">{{range .CatClusters}}<section class="card"><h2>{{.Title}}</h2><ul>{{range .Items}}<li>{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a>{{else}}{{.Title}}{{end}} <span class="m">[{{.Source}}] [{{.Category}}]</span></li>{{end}}</ul></section>{{end}}</div>
  </section>
</main>
</body>
</html>
`))
