package nav

// CategoryState is one category's monitor snapshot.
type CategoryState struct {
	Category string  `json:"category"`
	Enabled  bool    `json:"enabled"`
	Found    bool    `json:"found"`
	Distance float64 `json:"distance"`
	Zone     string  `json:"zone"`
	Freq     float64 `json:"freq"`
	Volume   float64 `json:"volume"`
	Pan      float64 `json:"pan"`
	Interval float64 `json:"interval"`
}

// State is a full control-side snapshot published after each tick.
type State struct {
	Time       float64         `json:"time"`
	Categories []CategoryState `json:"categories"`
}

// StateSink receives tick snapshots. Implementations must not block: the
// monitor is observational and the control tick will not wait for it.
type StateSink interface {
	Publish(s State)
}

func (n *Navigator) snapshot() State {
	s := State{
		Time:       n.clock,
		Categories: make([]CategoryState, 0, numCategories),
	}
	for _, st := range n.cats {
		cs := CategoryState{
			Category: st.cat.String(),
			Enabled:  st.enabled,
			Found:    st.target.Found,
		}
		if st.target.Found {
			cs.Distance = st.lastDist
			cs.Zone = zoneFor(st.lastDist / st.cfg.MaxDistance).String()
			cs.Freq = st.lastFreq
			cs.Volume = st.lastVol
			cs.Pan = st.lastPan
			cs.Interval = st.lastInterval
		}
		s.Categories = append(s.Categories, cs)
	}
	return s
}
