package api

type AccountDTO struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type MatchDTO struct {
	Metadata MatchMetadataDTO `json:"metadata"`
	Info     MatchInfoDTO     `json:"info"`
}

type MatchMetadataDTO struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfoDTO struct {
	QueueID      int              `json:"queueId"`
	GameCreation int64            `json:"gameCreation"`
	GameMode     string           `json:"gameMode"`
	Participants []ParticipantDTO `json:"participants"`
}

type ParticipantDTO struct {
	Puuid        string `json:"puuid"`
	ChampionName string `json:"championName"`
	Placement    int    `json:"placement"`
}

type DataDragonVersions []string
