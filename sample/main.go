package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/invokation-games/rating-sdk-go/rating"
	"github.com/invokation-games/rating-sdk-go/rating/credentials"
)

var (
	modelId = flag.String("model", "", "rating model id, required")
	sandbox = flag.Bool("sandbox", false, "use the sandbox environment")
)

func main() {
	flag.Parse()
	if len(*modelId) == 0 {
		flag.PrintDefaults()
		log.Fatalf("invalid parameters, model id required")
	}

	// INVKN_API_KEY, optionally INVKN_ENDPOINT
	godotenv.Load()

	cfg := rating.LoadDefaultConfig().
		WithCredentialsProvider(credentials.NewEnvironmentVariableCredentialsProvider()).
		WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if endpoint := os.Getenv(rating.EnvVarEndpoint); endpoint != "" {
		cfg.WithEndpoint(endpoint)
	}
	if *sandbox {
		cfg.WithEnvironment(rating.EnvironmentSandbox)
	}

	client := rating.NewClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	config, err := client.GetModelConfig(ctx, &rating.GetModelConfigRequest{
		ModelId: rating.Ptr(*modelId),
	})
	if err != nil {
		log.Fatalf("get model config failed, %v", err)
	}
	log.Printf("model config: mu=%v sigma=%v beta=%v tau=%v draw=%v",
		rating.ToFloat64(config.InitialMu), rating.ToFloat64(config.InitialSigma),
		rating.ToFloat64(config.Beta), rating.ToFloat64(config.Tau),
		rating.ToFloat64(config.DrawProbability))

	prediction, err := client.SubmitPrediction(ctx, &rating.SubmitPredictionRequest{
		ModelId: rating.Ptr(*modelId),
		Prediction: &rating.MatchPrediction{
			Teams: []rating.TeamRoster{
				{Players: []rating.PlayerRating{{PlayerId: rating.Ptr("alice")}}},
				{Players: []rating.PlayerRating{{PlayerId: rating.Ptr("bob")}}},
			},
		},
	})
	if err != nil {
		log.Fatalf("submit prediction failed, %v", err)
	}
	log.Printf("win probabilities: %v, draw: %v",
		prediction.Probabilities, rating.ToFloat64(prediction.DrawProbability))

	result, err := client.SubmitMatchResult(ctx, &rating.SubmitMatchResultRequest{
		ModelId: rating.Ptr(*modelId),
		MatchResult: &rating.MatchResult{
			MatchId:  rating.Ptr("sample-match-1"),
			PlayedAt: rating.Ptr(time.Now().UTC()),
			Teams: []rating.TeamResult{
				{Rank: rating.Ptr(int32(1)), Players: []rating.PlayerRating{{PlayerId: rating.Ptr("alice")}}},
				{Rank: rating.Ptr(int32(2)), Players: []rating.PlayerRating{{PlayerId: rating.Ptr("bob")}}},
			},
		},
	})
	if err != nil {
		log.Fatalf("submit match result failed, %v", err)
	}
	for _, pr := range result.Ratings {
		log.Printf("updated rating: %s mu=%v sigma=%v",
			rating.ToString(pr.PlayerId), rating.ToFloat64(pr.Mu), rating.ToFloat64(pr.Sigma))
	}
}
