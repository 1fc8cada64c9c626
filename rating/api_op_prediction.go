package rating

import (
	"context"
)

type SubmitPredictionRequest struct {
	// The id of the rating model to predict with.
	ModelId *string

	// The hypothetical match to predict.
	Prediction *MatchPrediction

	RequestCommon
}

type SubmitPredictionResult struct {
	// Win probability per team, in roster order. Sums to 1 together with
	// the draw probability.
	Probabilities []float64 `json:"probabilities,omitempty"`

	// Probability that the match ends in a draw.
	DrawProbability *float64 `json:"drawProbability,omitempty"`

	ResultCommon
}

// SubmitPrediction asks the model for pre-match win probabilities without
// changing any rating state.
func (c *Client) SubmitPrediction(ctx context.Context, request *SubmitPredictionRequest, optFns ...func(*Options)) (*SubmitPredictionResult, error) {
	var err error
	if request == nil {
		request = &SubmitPredictionRequest{}
	}
	if request.Prediction == nil {
		return nil, NewErrParamRequired("request.Prediction")
	}
	input := &OperationInput{
		OpName: "SubmitPrediction",
		Method: "POST",
		Headers: map[string]string{
			HTTPHeaderContentType: contentTypeJSON,
		},
		ModelId:  request.ModelId,
		Resource: "predictions",
	}
	if err = c.marshalInput(request, input, request.Prediction); err != nil {
		return nil, err
	}

	output, err := c.invokeOperation(ctx, input, optFns)
	if err != nil {
		return nil, err
	}

	result := &SubmitPredictionResult{}
	if err = c.unmarshalOutput(result, output, result); err != nil {
		return nil, c.toClientError(err, "UnmarshalOutputFail", output)
	}

	return result, nil
}
