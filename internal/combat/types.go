package combat

// Event is one entry of a recorded battle log. T is the scheduler tick count.
type Event struct {
	T       int            `json:"t"`
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Survivor is the post-battle snapshot of a combatant.
type Survivor struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Team  string  `json:"team"`
	HP    float64 `json:"hp"`
	MaxHP float64 `json:"max_hp"`
	MP    float64 `json:"mp"`
	MaxMP float64 `json:"max_mp"`
	Alive bool    `json:"alive"`
}
