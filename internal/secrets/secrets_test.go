package secrets_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prostech/outbound-api/internal/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingFetcher struct {
	values map[string]string
	calls  int
}

func (f *countingFetcher) Fetch(ctx context.Context, name string) (string, error) {
	f.calls++
	v, ok := f.values[name]
	if !ok {
		return "", errors.New("SecretNotFound")
	}
	return v, nil
}

func TestResolveSource(t *testing.T) {
	tests := []struct {
		name        string
		source      secrets.SecretSource
		environment string
		want        secrets.SecretSource
	}{
		{"auto in development", secrets.SourceAuto, "development", secrets.SourceEnvironment},
		{"empty in local", "", "local", secrets.SourceEnvironment},
		{"auto in production", secrets.SourceAuto, "production", secrets.SourceVault},
		{"auto in staging", secrets.SourceAuto, "staging", secrets.SourceVault},
		{"explicit environment in production", secrets.SourceEnvironment, "production", secrets.SourceEnvironment},
		{"explicit vault in development", secrets.SourceVault, "development", secrets.SourceVault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, secrets.ResolveSource(tt.source, tt.environment))
		})
	}
}

func TestProvider_EnvironmentSource(t *testing.T) {
	t.Setenv("SMTP_PASSWORD", "s3cret")

	p, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:      secrets.SourceAuto,
		Environment: "development",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, secrets.SourceEnvironment, p.Source())

	v, err := p.GetSecretOrEnv(context.Background(), "SMTP-PASSWORD", "SMTP_PASSWORD")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", v)

	_, err = p.GetSecretOrEnv(context.Background(), "SMTP-USERNAME", "SMTP_USER_NOT_SET_IN_TESTS")
	assert.Error(t, err)
}

func TestProvider_VaultWithoutNameFallsBackToEnvironment(t *testing.T) {
	p, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:      secrets.SourceVault,
		Environment: "production",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, secrets.SourceEnvironment, p.Source())
}

func TestVaultClient_CachesValues(t *testing.T) {
	fetcher := &countingFetcher{values: map[string]string{"DELIVERY-VIEW-URL": "db:3306/erp"}}
	vault := secrets.NewVaultClientWithFetcher(fetcher, &secrets.VaultConfig{CacheEnabled: true}, zap.NewNop())

	for i := 0; i < 3; i++ {
		v, err := vault.GetSecret(context.Background(), "DELIVERY-VIEW-URL")
		require.NoError(t, err)
		assert.Equal(t, "db:3306/erp", v)
	}
	assert.Equal(t, 1, fetcher.calls)

	vault.ClearCache()
	_, err := vault.GetSecret(context.Background(), "DELIVERY-VIEW-URL")
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestVaultClient_NoCache(t *testing.T) {
	fetcher := &countingFetcher{values: map[string]string{"SMTP-PASSWORD": "pw"}}
	vault := secrets.NewVaultClientWithFetcher(fetcher, &secrets.VaultConfig{CacheEnabled: false}, zap.NewNop())

	_, _ = vault.GetSecret(context.Background(), "SMTP-PASSWORD")
	_, _ = vault.GetSecret(context.Background(), "SMTP-PASSWORD")
	assert.Equal(t, 2, fetcher.calls)
}

func TestVaultProvider_MissingSecret(t *testing.T) {
	fetcher := &countingFetcher{values: map[string]string{}}
	vault := secrets.NewVaultClientWithFetcher(fetcher, &secrets.VaultConfig{}, zap.NewNop())
	p := secrets.NewVaultProvider(vault, zap.NewNop())

	_, err := p.GetSecret(context.Background(), "REDIS-PASSWORD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS-PASSWORD")
}
