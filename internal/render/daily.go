package render

import (
	"html/template"
	"strings"

	"github.com/abelbrown/radar/internal/snapshot"
)

// dailyView is the template payload for the daily page.
type dailyView struct {
	Date     string
	Briefing *snapshot.Briefing
	Items    []dailyItem
}

type dailyItem struct {
	Title    string
	URL      string
	Source   string
	Category string
	Score    int
	Why      string
}

// Daily renders one day's snapshot as the index page.
func Daily(day *snapshot.Day) (string, error) {
	v := dailyView{
		Date:     day.Date,
		Briefing: day.Briefing,
	}
	for _, it := range day.Items {
		cat := strings.TrimSpace(it.Primary)
		if cat == "" {
			cat = "misc"
		}
		v.Items = append(v.Items, dailyItem{
			Title:    strings.TrimSpace(it.Title),
			URL:      it.Href(),
			Source:   strings.TrimSpace(it.Source),
			Category: cat,
			Score:    it.Score,
			Why:      it.Why,
		})
	}

	var b strings.Builder
	if err := dailyTmpl.Execute(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

var dailyTmpl = template.Must(template.New("daily").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>Radar · {{.Date}}</title>
  <style>
    body { font-family: system-ui, -apple-system, Segoe UI, Roboto, Arial, sans-serif; margin:0; background:#0b0e14; color:#e6edf3; }
    .wrap { max-width:900px; margin:0 auto; padding:18px; }
    .card { background:#0f1420; border:1px solid #1f2a3a; border-radius:14px; padding:14px; margin-bottom:14px; }
    h1 { font-size:18px; }
    h2 { margin:0 0 10px 0; font-size:15px; color:#cbd5e1; }
    ul { margin:0; padding-left:18px; }
    li { margin:6px 0; line-height:1.25rem; }
    a { color:#8ab4f8; text-decoration:none; }
    a:hover { text-decoration:underline; }
    .m { color:#9aa4b2; margin-left:8px; font-size:12px; }
    .why { color:#9aa4b2; font-size:12px; display:block; }
  </style>
</head>
<body>
<main class="wrap">
  <h1>Radar · {{.Date}}</h1>

  {{with .Briefing}}
  <section class="card">
    <h2>Briefing</h2>
    <ul>
      {{range .Signals}}<li>{{.}}</li>{{end}}
      {{range .Risks}}<li>{{.}}</li>{{end}}
      {{range .Watch}}<li>{{.}}</li>{{end}}
    </ul>
  </section>
  {{end}}

  <section class="card">
    <h2>Today's items</h2>
    <ul>
      {{range .Items}}<li>{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Title}}</a>{{else}}{{.Title}}{{end}} <span class="m">[{{.Source}}] [{{.Category}}] [{{.Score}}]</span>{{if .Why}}<span class="why">{{.Why}}</span>{{end}}</li>{{else}}<li>No data</li>{{end}}
    </ul>
  </section>
</main>
</body>
</html>
`))
