package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsClient is the subset of the Secrets Manager API used here.
type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// newSecretsClient is swapped out in tests.
var newSecretsClient = func(ctx context.Context) (SecretsClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return secretsmanager.NewFromConfig(cfg), nil
}

// ResolveSecret returns the token signing secret. When arn is set the value
// is read from AWS Secrets Manager; otherwise fallback is used as is.
func ResolveSecret(ctx context.Context, arn, fallback string) (string, error) {
	if arn == "" {
		return fallback, nil
	}

	client, err := newSecretsClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load aws config: %w", err)
	}
	return FetchSecret(ctx, client, arn)
}

// FetchSecret reads a string secret by ARN or name.
func FetchSecret(ctx context.Context, client SecretsClient, arn string) (string, error) {
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(arn),
	})
	if err != nil {
		return "", fmt.Errorf("failed to read secret %s: %w", arn, err)
	}
	secret := aws.ToString(out.SecretString)
	if secret == "" {
		return "", errors.New("secret " + arn + " has no string value")
	}
	return secret, nil
}
