package domain

// ProfileInfo holds the character summary of a profile
type ProfileInfo struct {
	Nickname string `json:"Nickname"`
	Level    int    `json:"Level"`
}

// EftStats holds aggregated raid statistics
type EftStats struct {
	TotalInGameTime float64 `json:"TotalInGameTime"` // seconds
}

// ProfileStats wraps the per-game statistics blocks
type ProfileStats struct {
	Eft *EftStats `json:"Eft,omitempty"`
}

// Profile is a single character profile (PMC or Scav) of a session
type Profile struct {
	ID    string        `json:"_id"`
	Info  *ProfileInfo  `json:"Info,omitempty"`
	Stats *ProfileStats `json:"Stats,omitempty"`
}

// SessionProfiles groups the PMC and Scav profiles that belong to one session
type SessionProfiles struct {
	PMC  *Profile `json:"pmc,omitempty"`
	Scav *Profile `json:"scav,omitempty"`
}

// PlayerMetrics are the raw progression metrics used to scale spawn chances
type PlayerMetrics struct {
	Level int
	Hours float64
}

// InGameSeconds returns the total raid time recorded on the profile, 0 when absent
func (p *Profile) InGameSeconds() float64 {
	if p == nil || p.Stats == nil || p.Stats.Eft == nil {
		return 0
	}
	return p.Stats.Eft.TotalInGameTime
}

// Level returns the profile level, 0 when absent
func (p *Profile) Level() int {
	if p == nil || p.Info == nil {
		return 0
	}
	return p.Info.Level
}
