package rating

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/invokation-games/rating-sdk-go/rating/credentials"
)

var testOperationCases = []struct {
	Name           string
	StatusCode     int
	Headers        map[string]string
	Body           []byte
	CheckRequestFn func(t *testing.T, r *http.Request)
	InvokeFn       func(t *testing.T, c *Client) (any, error)
	CheckResultFn  func(t *testing.T, result any)
}{
	{
		"SubmitMatchResult",
		200,
		map[string]string{
			"Content-Type": "application/json",
		},
		[]byte(`{
			"matchId": "match-42",
			"ratings": [
				{"playerId": "alice", "mu": 27.635, "sigma": 8.065},
				{"playerId": "bob", "mu": 22.365, "sigma": 8.065}
			]
		}`),
		func(t *testing.T, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/v1/production/models/duel-v2/match-results", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			data, err := io.ReadAll(r.Body)
			assert.Nil(t, err)
			var body map[string]any
			assert.Nil(t, json.Unmarshal(data, &body))
			assert.Equal(t, "match-42", body["matchId"])
			teams := body["teams"].([]any)
			assert.Len(t, teams, 2)
			// absent optional fields must not be serialized
			assert.NotContains(t, string(data), "mu")
			assert.NotContains(t, string(data), "sigma")
		},
		func(t *testing.T, c *Client) (any, error) {
			return c.SubmitMatchResult(context.TODO(), &SubmitMatchResultRequest{
				ModelId: Ptr("duel-v2"),
				MatchResult: &MatchResult{
					MatchId:  Ptr("match-42"),
					PlayedAt: Ptr(time.Date(2026, 8, 30, 20, 15, 0, 0, time.UTC)),
					Teams: []TeamResult{
						{Rank: Ptr(int32(1)), Players: []PlayerRating{{PlayerId: Ptr("alice")}}},
						{Rank: Ptr(int32(2)), Players: []PlayerRating{{PlayerId: Ptr("bob")}}},
					},
				},
			})
		},
		func(t *testing.T, result any) {
			r := result.(*SubmitMatchResultResult)
			assert.Equal(t, 200, r.StatusCode)
			assert.Equal(t, "match-42", ToString(r.MatchId))
			assert.Len(t, r.Ratings, 2)
			assert.Equal(t, "alice", ToString(r.Ratings[0].PlayerId))
			assert.Equal(t, 27.635, ToFloat64(r.Ratings[0].Mu))
			assert.Equal(t, 8.065, ToFloat64(r.Ratings[0].Sigma))
			assert.Equal(t, 1, r.OpMetadata.Get(MetadataKeyAttempts))
		},
	},
	{
		"SubmitPrediction",
		200,
		map[string]string{
			"Content-Type": "application/json",
		},
		[]byte(`{"probabilities":[0.61,0.39],"drawProbability":0.015}`),
		func(t *testing.T, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/v1/production/models/duel-v2/predictions", r.URL.Path)

			data, err := io.ReadAll(r.Body)
			assert.Nil(t, err)
			var body map[string]any
			assert.Nil(t, json.Unmarshal(data, &body))
			assert.Len(t, body["teams"].([]any), 2)
		},
		func(t *testing.T, c *Client) (any, error) {
			return c.SubmitPrediction(context.TODO(), &SubmitPredictionRequest{
				ModelId: Ptr("duel-v2"),
				Prediction: &MatchPrediction{
					Teams: []TeamRoster{
						{Players: []PlayerRating{{PlayerId: Ptr("alice")}}},
						{Players: []PlayerRating{{PlayerId: Ptr("bob")}}},
					},
				},
			})
		},
		func(t *testing.T, result any) {
			r := result.(*SubmitPredictionResult)
			assert.Equal(t, []float64{0.61, 0.39}, r.Probabilities)
			assert.Equal(t, 0.015, ToFloat64(r.DrawProbability))
		},
	},
	{
		"GetModelConfig",
		200,
		map[string]string{
			"Content-Type": "application/json",
		},
		[]byte(`{
			"initialMu": 25.0,
			"initialSigma": 8.333,
			"beta": 4.166,
			"tau": 0.083,
			"drawProbability": 0.1,
			"updatedAt": "2026-08-01T09:30:00Z"
		}`),
		func(t *testing.T, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/v1/production/models/duel-v2/config", r.URL.Path)
		},
		func(t *testing.T, c *Client) (any, error) {
			return c.GetModelConfig(context.TODO(), &GetModelConfigRequest{
				ModelId: Ptr("duel-v2"),
			})
		},
		func(t *testing.T, result any) {
			r := result.(*GetModelConfigResult)
			assert.Equal(t, 25.0, ToFloat64(r.InitialMu))
			assert.Equal(t, 8.333, ToFloat64(r.InitialSigma))
			assert.Equal(t, 4.166, ToFloat64(r.Beta))
			assert.Equal(t, 0.083, ToFloat64(r.Tau))
			assert.Equal(t, 0.1, ToFloat64(r.DrawProbability))
			assert.Equal(t, time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC), ToTime(r.UpdatedAt))
		},
	},
}

func TestOperations(t *testing.T) {
	for _, c := range testOperationCases {
		t.Run(c.Name, func(t *testing.T) {
			server := testSetupMockServer(t, c.StatusCode, c.Headers, c.Body, c.CheckRequestFn)
			defer server.Close()

			cfg := LoadDefaultConfig().
				WithCredentialsProvider(credentials.NewAnonymousCredentialsProvider()).
				WithEndpoint(server.URL)

			client := NewClient(cfg)

			result, err := c.InvokeFn(t, client)
			assert.Nil(t, err)
			c.CheckResultFn(t, result)
		})
	}
}

func TestOperationsInSandboxEnvironment(t *testing.T) {
	server := testSetupMockServer(t, 200, map[string]string{"Content-Type": "application/json"},
		[]byte(`{"initialMu":25.0}`),
		func(t *testing.T, r *http.Request) {
			assert.Equal(t, "/v1/sandbox/models/duel-v2/config", r.URL.Path)
		})
	defer server.Close()

	cfg := LoadDefaultConfig().
		WithEnvironment(EnvironmentSandbox).
		WithEndpoint(server.URL)

	client := NewClient(cfg)

	_, err := client.GetModelConfig(context.TODO(), &GetModelConfigRequest{ModelId: Ptr("duel-v2")})
	assert.Nil(t, err)
}

func TestModelIdIsPathEscaped(t *testing.T) {
	server := testSetupMockServer(t, 200, nil, []byte(`{}`),
		func(t *testing.T, r *http.Request) {
			assert.Equal(t, "/v1/production/models/duel%2Fv2%20beta/config", r.URL.RawPath)
		})
	defer server.Close()

	cfg := LoadDefaultConfig().WithEndpoint(server.URL)
	client := NewClient(cfg)

	_, err := client.GetModelConfig(context.TODO(), &GetModelConfigRequest{ModelId: Ptr("duel/v2 beta")})
	assert.Nil(t, err)
}

func TestRequestCommonHeadersAndParameters(t *testing.T) {
	server := testSetupMockServer(t, 200, nil, []byte(`{}`),
		func(t *testing.T, r *http.Request) {
			assert.Equal(t, "trace-1", r.Header.Get("X-Trace"))
			assert.Equal(t, "true", r.URL.Query().Get("dryRun"))
		})
	defer server.Close()

	cfg := LoadDefaultConfig().WithEndpoint(server.URL)
	client := NewClient(cfg)

	_, err := client.SubmitMatchResult(context.TODO(), &SubmitMatchResultRequest{
		ModelId:     Ptr("duel-v2"),
		MatchResult: &MatchResult{MatchId: Ptr("m")},
		RequestCommon: RequestCommon{
			Headers:    map[string]string{"X-Trace": "trace-1"},
			Parameters: map[string]string{"dryRun": "true"},
		},
	})
	assert.Nil(t, err)
}

func TestInvokeOperationValidation(t *testing.T) {
	cfg := LoadDefaultConfig().WithEndpoint("http://localhost:0")
	client := NewClient(cfg)

	_, err := client.InvokeOperation(context.TODO(), nil)
	assert.NotNil(t, err)

	_, err = client.InvokeOperation(context.TODO(), &OperationInput{
		OpName:  "GetModelConfig",
		Method:  "PATCH",
		ModelId: Ptr("duel-v2"),
	})
	assert.NotNil(t, err)

	_, err = client.InvokeOperation(context.TODO(), &OperationInput{
		Method:  "GET",
		ModelId: Ptr("duel-v2"),
	})
	assert.NotNil(t, err)
}
