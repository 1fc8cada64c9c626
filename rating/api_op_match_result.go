package rating

import (
	"context"
)

type SubmitMatchResultRequest struct {
	// The id of the rating model the match belongs to.
	ModelId *string

	// The finished match to rate.
	MatchResult *MatchResult

	RequestCommon
}

type SubmitMatchResultResult struct {
	// Echo of the caller-assigned match id.
	MatchId *string `json:"matchId,omitempty"`

	// Ratings of all participating players after the update.
	Ratings []PlayerRating `json:"ratings,omitempty"`

	ResultCommon
}

// SubmitMatchResult reports a finished match and returns the updated player
// ratings.
func (c *Client) SubmitMatchResult(ctx context.Context, request *SubmitMatchResultRequest, optFns ...func(*Options)) (*SubmitMatchResultResult, error) {
	var err error
	if request == nil {
		request = &SubmitMatchResultRequest{}
	}
	if request.MatchResult == nil {
		return nil, NewErrParamRequired("request.MatchResult")
	}
	input := &OperationInput{
		OpName: "SubmitMatchResult",
		Method: "POST",
		Headers: map[string]string{
			HTTPHeaderContentType: contentTypeJSON,
		},
		ModelId:  request.ModelId,
		Resource: "match-results",
	}
	if err = c.marshalInput(request, input, request.MatchResult); err != nil {
		return nil, err
	}

	output, err := c.invokeOperation(ctx, input, optFns)
	if err != nil {
		return nil, err
	}

	result := &SubmitMatchResultResult{}
	if err = c.unmarshalOutput(result, output, result); err != nil {
		return nil, c.toClientError(err, "UnmarshalOutputFail", output)
	}

	return result, nil
}
