package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/prostech/outbound-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DeliveryView.Driver)
	assert.Equal(t, "delivery_full_view", cfg.DeliveryView.ViewName)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL())
	assert.Equal(t, "memory", cfg.Cache.Mode)
	assert.Equal(t, 4, cfg.Notifications.WeeksAhead)
	assert.Equal(t, 50, cfg.Notifications.MaxRecipients)
	assert.Equal(t, "custom.clearance@prostech.vn", cfg.Notifications.CustomsMailbox)
	assert.Equal(t, 8, cfg.Notifications.WorkdayStartHour)
	assert.Equal(t, 17, cfg.Notifications.WorkdayEndHour)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.App.Timezone)
	assert.Equal(t, 30*time.Second, cfg.DeliveryView.QueryTimeoutDuration())
}

func TestLoad_FlatEnvironmentOverrides(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("DELIVERY_WEEKS_AHEAD", "6")
	t.Setenv("MAX_EMAIL_RECIPIENTS", "10")
	t.Setenv("EMAIL_SENDER", "dispatch@example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
	assert.Equal(t, 6, cfg.Notifications.WeeksAhead)
	assert.Equal(t, 10, cfg.Notifications.MaxRecipients)
	assert.Equal(t, "dispatch@example.com", cfg.Notifications.Sender)
}

func TestLoadWithSecrets_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "development")
	t.Setenv("DELIVERYVIEW_URL", "erp-db:3306/erp")
	t.Setenv("DELIVERYVIEW_USER", "reporter")
	t.Setenv("DELIVERYVIEW_PASSWORD", "pw")
	t.Setenv("SMTP_USER", "mailer")

	cfg, err := config.LoadWithSecrets(context.Background(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "erp-db:3306/erp", cfg.DeliveryView.URL)
	assert.Equal(t, "reporter", cfg.DeliveryView.User)
	assert.Equal(t, "pw", cfg.DeliveryView.Password)
	assert.Equal(t, "mailer", cfg.SMTP.User)
}

func TestLoadWithSecrets_MissingViewURL(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "development")
	t.Setenv("DELIVERYVIEW_URL", "")

	_, err := config.LoadWithSecrets(context.Background(), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delivery view URL")
}

func TestAppConfig_Location(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
	}{
		{"empty falls back to UTC", "", "UTC"},
		{"invalid falls back to UTC", "Mars/Olympus", "UTC"},
		{"explicit UTC", "UTC", "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := config.AppConfig{Timezone: tt.timezone}
			assert.Equal(t, tt.want, app.Location().String())
		})
	}
}
