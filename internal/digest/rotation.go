package digest

import "sort"

// Rotation captures the change in a category's share of daily volume
// between an early and a recent sub-window.
type Rotation struct {
	Name   string
	Early  float64 // mean share over the first k days
	Recent float64 // mean share over the last k days
	Delta  float64 // Recent - Early
	Series []int
}

// rotationTop caps both the riser and faller lists.
const rotationTop = 5

// Rotate ranks category share deltas into risers and fallers.
// The sub-window is k = min(3, max(1, n/2)) days. Windows shorter than
// two days have no contrast and yield empty lists.
//
// Risers are ordered best first. Fallers are ordered worst first (most
// negative delta leads); with fewer than 2*rotationTop categories the
// two lists can overlap.
func Rotate(rows []CategoryRow, n int) (risers, fallers []Rotation) {
	if n < 2 {
		return nil, nil
	}
	k := n / 2
	if k < 1 {
		k = 1
	}
	if k > 3 {
		k = 3
	}

	rot := make([]Rotation, 0, len(rows))
	for _, r := range rows {
		s := r.Shares
		var early, recent float64
		for i := 0; i < k; i++ {
			early += s[i]
			recent += s[len(s)-k+i]
		}
		early /= float64(k)
		recent /= float64(k)
		rot = append(rot, Rotation{
			Name:   r.Name,
			Early:  early,
			Recent: recent,
			Delta:  recent - early,
			Series: r.Series,
		})
	}

	desc := make([]Rotation, len(rot))
	copy(desc, rot)
	sort.Slice(desc, func(i, j int) bool {
		if desc[i].Delta != desc[j].Delta {
			return desc[i].Delta > desc[j].Delta
		}
		return desc[i].Name < desc[j].Name
	})

	asc := make([]Rotation, len(rot))
	copy(asc, rot)
	sort.Slice(asc, func(i, j int) bool {
		if asc[i].Delta != asc[j].Delta {
			return asc[i].Delta < asc[j].Delta
		}
		return asc[i].Name < asc[j].Name
	})

	top := rotationTop
	if top > len(desc) {
		top = len(desc)
	}
	return desc[:top], asc[:top]
}
