package domain

import (
	"fmt"
	"strings"
)

const RiotIDSeparator = "#"

// ParseRiotID splits "Name#Tag" into its parts. It performs no network I/O.
func ParseRiotID(raw string) (PlayerIdentity, error) {
	name, tag, ok := strings.Cut(strings.TrimSpace(raw), RiotIDSeparator)
	if !ok {
		return PlayerIdentity{}, fmt.Errorf("%w: missing %q separator", ErrMalformedRiotID, RiotIDSeparator)
	}

	name = strings.TrimSpace(name)
	tag = strings.TrimSpace(tag)
	switch {
	case name == "":
		return PlayerIdentity{}, fmt.Errorf("%w: empty game name", ErrMalformedRiotID)
	case tag == "":
		return PlayerIdentity{}, fmt.Errorf("%w: empty tag line", ErrMalformedRiotID)
	case strings.Contains(tag, RiotIDSeparator):
		return PlayerIdentity{}, fmt.Errorf("%w: more than one %q", ErrMalformedRiotID, RiotIDSeparator)
	}

	return PlayerIdentity{GameName: name, TagLine: tag}, nil
}

func NewPlayerIdentity(gameName, tagLine string) (PlayerIdentity, error) {
	return ParseRiotID(gameName + RiotIDSeparator + tagLine)
}
