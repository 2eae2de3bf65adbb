package api

import (
	"arena-tracker/internal/constants"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

func (c *RiotClient) GetDataDragonVersions(ctx context.Context) (DataDragonVersions, error) {
	u := fmt.Sprintf("%s/api/versions.json", c.dataDragonURL)
	versions, err := doRequest[DataDragonVersions](ctx, c, EndpointDataDragonVersions, u, false)
	if err != nil {
		return nil, err
	}
	return *versions, nil
}

// GetChampionRoster returns the champion keys of champion.json in document order.
func (c *RiotClient) GetChampionRoster(ctx context.Context, version string) ([]string, error) {
	u := fmt.Sprintf("%s/cdn/%s/data/%s/champion.json", c.dataDragonURL, url.PathEscape(version), constants.DataDragonLocale)
	body, err := c.do(ctx, EndpointChampionRoster, u, false)
	if err != nil {
		return nil, err
	}

	roster, err := parseRosterKeys(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EndpointChampionRoster, err)
	}
	return roster, nil
}

// parseRosterKeys streams the document because a map would lose the key order.
func parseRosterKeys(body []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		if key != "data" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("failed to skip %q: %w", key, err)
			}
			continue
		}

		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("data: %w", err)
		}
		roster := []string{}
		for dec.More() {
			champion, err := readKey(dec)
			if err != nil {
				return nil, err
			}
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("failed to skip champion %q: %w", champion, err)
			}
			roster = append(roster, champion)
		}
		return roster, nil
	}

	return nil, fmt.Errorf("missing data object")
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("failed to read key: %w", err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}
