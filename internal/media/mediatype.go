// Package media defines the shared data model for media resolution:
// media type categories, playback modes, player state and search results.
package media

import (
	"encoding/json"
	"fmt"
)

// MediaType is a coarse genre/format tag used to narrow provider search
// and result filtering.
type MediaType int

const (
	Generic MediaType = iota
	Music
	Video
	Audiobook
	Radio
	RadioTheatre
	Game
	TV
	Podcast
	News
	Movie
	ShortFilm
	SilentMovie
	BlackWhiteMovie
	Documentary
	VisualStory
	Trailer
	BehindTheScenes
	Adult
)

var mediaTypeNames = map[MediaType]string{
	Generic:         "generic",
	Music:           "music",
	Video:           "video",
	Audiobook:       "audiobook",
	Radio:           "radio",
	RadioTheatre:    "radio_theatre",
	Game:            "game",
	TV:              "tv",
	Podcast:         "podcast",
	News:            "news",
	Movie:           "movie",
	ShortFilm:       "short_film",
	SilentMovie:     "silent_movie",
	BlackWhiteMovie: "bw_movie",
	Documentary:     "documentary",
	VisualStory:     "visual_story",
	Trailer:         "trailer",
	BehindTheScenes: "behind_the_scenes",
	Adult:           "adult",
}

// String returns the wire name of the media type.
func (t MediaType) String() string {
	if name, ok := mediaTypeNames[t]; ok {
		return name
	}
	return "generic"
}

// ParseMediaType resolves a wire name back to a MediaType.
// Unknown names resolve to Generic.
func ParseMediaType(name string) MediaType {
	for t, n := range mediaTypeNames {
		if n == name {
			return t
		}
	}
	return Generic
}

// MarshalJSON encodes the media type as its wire name.
func (t MediaType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a media type from its wire name.
func (t *MediaType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("media type: %w", err)
	}
	*t = ParseMediaType(name)
	return nil
}
