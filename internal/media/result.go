package media

// Result is one candidate playback item offered by a provider.
// MatchConfidence is assumed calibrated to the same 0..1 scale across
// providers. Playback may be overridden in place by the filter stage;
// every other field is set once by the provider response.
type Result struct {
	ProviderID      string       `json:"skill_id"`
	Title           string       `json:"title"`
	URI             string       `json:"uri"`
	MatchConfidence float64      `json:"match_confidence"`
	MediaType       MediaType    `json:"media_type"`
	Playback        PlaybackMode `json:"playback"`
}
