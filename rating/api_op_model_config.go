package rating

import (
	"context"
)

type GetModelConfigRequest struct {
	// The id of the rating model.
	ModelId *string

	RequestCommon
}

type GetModelConfigResult struct {
	ModelConfig

	ResultCommon
}

// GetModelConfig fetches the rating parameters of a model.
func (c *Client) GetModelConfig(ctx context.Context, request *GetModelConfigRequest, optFns ...func(*Options)) (*GetModelConfigResult, error) {
	var err error
	if request == nil {
		request = &GetModelConfigRequest{}
	}
	input := &OperationInput{
		OpName:   "GetModelConfig",
		Method:   "GET",
		ModelId:  request.ModelId,
		Resource: "config",
	}
	if err = c.marshalInput(request, input, nil); err != nil {
		return nil, err
	}

	output, err := c.invokeOperation(ctx, input, optFns)
	if err != nil {
		return nil, err
	}

	result := &GetModelConfigResult{}
	if err = c.unmarshalOutput(result, output, &result.ModelConfig); err != nil {
		return nil, c.toClientError(err, "UnmarshalOutputFail", output)
	}

	return result, nil
}
