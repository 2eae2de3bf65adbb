package domain

import "errors"

var (
	ErrMalformedRiotID = errors.New("malformed riot id")
	ErrAccountNotFound = errors.New("account not found")
)

// RiotIDFormatHint is shown to users whose input could not be parsed.
const RiotIDFormatHint = "enter your Riot ID in the format Name#Tag"
