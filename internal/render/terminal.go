package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/radar/internal/digest"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	sparkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	pillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// Terminal renders the digest for the terminal: the same sections as
// the weekly page, styled with lipgloss.
func Terminal(d *digest.Digest) string {
	if d.Empty() {
		return titleStyle.Render("Weekly Radar") + "\n\n" + metaStyle.Render("No data.") + "\n"
	}

	var b strings.Builder

	period := fmt.Sprintf("%s → %s", d.Days[0], d.Days[len(d.Days)-1])
	b.WriteString(titleStyle.Render("Weekly Radar · "+period) + "\n")

	pills := lipgloss.JoinHorizontal(lipgloss.Top,
		pillStyle.Render(fmt.Sprintf("window %dd", d.N)),
		pillStyle.Render(fmt.Sprintf("half-life %.1fd", d.HalfLife)),
		pillStyle.Render(fmt.Sprintf("ent HHI %.3f", d.EntityConcentration.HHI)),
		pillStyle.Render(fmt.Sprintf("cat HHI %.3f", d.CategoryConcentration.HHI)),
	)
	b.WriteString(pills + "\n")

	b.WriteString(sectionStyle.Render("Entities · momentum") + "\n")
	for _, r := range capRows(d.Entities, 12) {
		writeEntityLine(&b, r)
	}

	b.WriteString(sectionStyle.Render("Categories · share momentum") + "\n")
	for i, r := range d.Categories {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "  %s %s %s\n",
			keyStyle.Render(pad(r.Name, 18)),
			sparkStyle.Render(Spark(r.Series)),
			metaStyle.Render(fmt.Sprintf("share_slope %+.3f · w %.2f · total %d", r.ShareSlope, r.WeightedTotal, r.Total)))
	}

	b.WriteString(sectionStyle.Render("Rotation · rising") + "\n")
	for _, r := range d.Risers {
		writeRotationLine(&b, r)
	}
	b.WriteString(sectionStyle.Render("Rotation · falling (worst first)") + "\n")
	for _, r := range d.Fallers {
		writeRotationLine(&b, r)
	}

	b.WriteString(sectionStyle.Render("New entrants") + "\n")
	for _, r := range d.NewEntrants {
		writeEntityLine(&b, r)
	}
	b.WriteString(sectionStyle.Render("Breakouts") + "\n")
	for _, r := range d.Breakouts {
		writeEntityLine(&b, r)
	}

	b.WriteString(sectionStyle.Render("Implications") + "\n")
	for _, line := range d.Implications {
		b.WriteString("  • " + line + "\n")
	}

	for _, c := range d.EntityClusters {
		b.WriteString(sectionStyle.Render("Cluster · "+c.Name) + "\n")
		for _, it := range c.Items {
			fmt.Fprintf(&b, "  %s %s\n",
				strings.TrimSpace(it.Title),
				metaStyle.Render(fmt.Sprintf("[%s]", strings.TrimSpace(it.Source))))
		}
	}

	return b.String()
}

func writeEntityLine(b *strings.Builder, r digest.MetricRow) {
	fmt.Fprintf(b, "  %s %s %s\n",
		keyStyle.Render(pad(r.Name, 18)),
		sparkStyle.Render(Spark(r.Series)),
		metaStyle.Render(fmt.Sprintf("w %.2f · Δ %+.2f · streak %d · total %d", r.WeightedTotal, r.Delta, r.Streak, r.Total)))
}

func writeRotationLine(b *strings.Builder, r digest.Rotation) {
	fmt.Fprintf(b, "  %s %s\n",
		keyStyle.Render(pad(r.Name, 18)),
		metaStyle.Render(fmt.Sprintf("share %.1f%% → %.1f%% (Δ %+.1f%%)", r.Early*100, r.Recent*100, r.Delta*100)))
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
