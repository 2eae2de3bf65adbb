package apitest

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/valyala/fasthttp"
)

func AccountPath(gameName, tagLine string) string {
	return fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s", url.PathEscape(gameName), url.PathEscape(tagLine))
}

func MatchIDsPath(puuid string) string {
	return fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids", url.PathEscape(puuid))
}

func MatchPath(matchID string) string {
	return "/lol/match/v5/matches/" + url.PathEscape(matchID)
}

func ChampionRosterPath(version string) string {
	return fmt.Sprintf("/cdn/%s/data/en_US/champion.json", version)
}

const VersionsPath = "/api/versions.json"

type Participant struct {
	Puuid        string `json:"puuid"`
	ChampionName string `json:"championName"`
	Placement    int    `json:"placement"`
}

// Match builds a match-v5 style detail body.
func Match(matchID string, participants ...Participant) map[string]any {
	puuids := make([]string, len(participants))
	for i, p := range participants {
		puuids[i] = p.Puuid
	}
	return map[string]any{
		"metadata": map[string]any{"matchId": matchID, "participants": puuids},
		"info":     map[string]any{"queueId": 1700, "gameMode": "CHERRY", "participants": participants},
	}
}

// Roster builds a champion.json body whose data keys appear in the given order.
func Roster(version string, champions ...string) string {
	body := fmt.Sprintf(`{"type":"champion","format":"standAloneComplex","version":%q,"data":{`, version)
	for i, c := range champions {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`%q:{"id":%q,"name":%q}`, c, c, c)
	}
	return body + "}}"
}

// PagedMatchIDs serves ids in pages honouring the start and count query args.
func PagedMatchIDs(ids []string) Handler {
	return func(req *fasthttp.Request) (int, any) {
		args := req.URI().QueryArgs()
		start, _ := strconv.Atoi(string(args.Peek("start")))
		count, _ := strconv.Atoi(string(args.Peek("count")))
		if start >= len(ids) {
			return fasthttp.StatusOK, []string{}
		}
		end := min(start+count, len(ids))
		return fasthttp.StatusOK, ids[start:end]
	}
}
