package digest

import "fmt"

// Concentration bands above which attention counts as crowded.
const (
	entityHHIHigh   = 0.18
	categoryHHIHigh = 0.25
)

// implications turns the computed signals into plain-English remarks
// for the digest header. Direct statements only.
func implications(d *Digest) []string {
	var out []string

	if len(d.Categories) > 0 {
		c := d.Categories[0]
		out = append(out, fmt.Sprintf(
			"Dominant category: %s (share slope %.3f, weighted total %.2f).",
			c.Name, c.ShareSlope, c.WeightedTotal))
	}
	if len(d.Entities) > 0 {
		e := d.Entities[0]
		out = append(out, fmt.Sprintf(
			"Lead actor: %s (weighted total %.2f, delta %.2f, streak %dd).",
			e.Name, e.WeightedTotal, e.Delta, e.Streak))
	}

	if d.EntityConcentration.HHI >= entityHHIHigh {
		out = append(out, fmt.Sprintf(
			"Entity attention is concentrated (HHI %.3f): a few actors dominate the narrative.",
			d.EntityConcentration.HHI))
	} else {
		out = append(out, fmt.Sprintf(
			"Entity concentration is moderate (HHI %.3f).", d.EntityConcentration.HHI))
	}

	if d.CategoryConcentration.HHI >= categoryHHIHigh {
		out = append(out, fmt.Sprintf(
			"Category attention is concentrated (HHI %.3f): coverage is collapsing onto one theme.",
			d.CategoryConcentration.HHI))
	} else {
		out = append(out, fmt.Sprintf(
			"Category concentration is moderate (HHI %.3f).", d.CategoryConcentration.HHI))
	}

	return out
}
