package rating

import "time"

// PlayerRating is one player's skill estimate. Mu and Sigma are optional on
// submission; absent fields tell the service to use the player's stored
// rating.
type PlayerRating struct {
	// Unique id of the player within the model.
	PlayerId *string `json:"playerId,omitempty"`

	// Mean of the player's skill estimate.
	Mu *float64 `json:"mu,omitempty"`

	// Standard deviation of the player's skill estimate.
	Sigma *float64 `json:"sigma,omitempty"`
}

// TeamResult is one team's placement in a finished match.
type TeamResult struct {
	// Final rank of the team, 1 is the winner. Equal ranks denote a draw.
	Rank *int32 `json:"rank,omitempty"`

	// The players on the team.
	Players []PlayerRating `json:"players,omitempty"`
}

// MatchResult describes one finished match.
type MatchResult struct {
	// Caller-assigned id of the match, used for idempotent resubmission.
	MatchId *string `json:"matchId,omitempty"`

	// When the match finished.
	PlayedAt *time.Time `json:"playedAt,omitempty"`

	// The participating teams with their final ranks.
	Teams []TeamResult `json:"teams,omitempty"`
}

// TeamRoster is a team lineup for a match that has not been played yet.
type TeamRoster struct {
	Players []PlayerRating `json:"players,omitempty"`
}

// MatchPrediction describes a hypothetical match to predict.
type MatchPrediction struct {
	Teams []TeamRoster `json:"teams,omitempty"`
}

// ModelConfig holds the rating parameters of a model.
type ModelConfig struct {
	// Mean assigned to players the model has never seen.
	InitialMu *float64 `json:"initialMu,omitempty"`

	// Standard deviation assigned to players the model has never seen.
	InitialSigma *float64 `json:"initialSigma,omitempty"`

	// Distance between skill means that gives an 80% win chance.
	Beta *float64 `json:"beta,omitempty"`

	// Additive dynamics factor applied per match.
	Tau *float64 `json:"tau,omitempty"`

	// Prior probability of a draw.
	DrawProbability *float64 `json:"drawProbability,omitempty"`

	// Last time the model parameters changed.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
