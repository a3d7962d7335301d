package storage_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prostech/outbound-api/internal/config"
	"github.com/prostech/outbound-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestArchiveInterfaceCompliance(t *testing.T) {
	var _ storage.Archive = (*storage.LocalArchive)(nil)
	var _ storage.Archive = (*storage.AzureBlobArchive)(nil)
}

func TestArchiveKey(t *testing.T) {
	at := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)

	key := storage.ArchiveKey("delivery_schedule", at, "delivery_schedule_lan_20240311.xlsx")

	assert.True(t, strings.HasPrefix(key, "delivery_schedule/2024/03/11/"), key)
	assert.True(t, strings.HasSuffix(key, "_delivery_schedule_lan_20240311.xlsx"), key)
	assert.NotEqual(t, key, storage.ArchiveKey("delivery_schedule", at, "delivery_schedule_lan_20240311.xlsx"))

	escaped := storage.ArchiveKey("overdue_alert", at, "../../etc/passwd")
	assert.NotContains(t, escaped, "..")
}

func TestNewLocalArchive_CreatesDirectory(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), "archive")

	la, err := storage.NewLocalArchive(basePath)

	require.NoError(t, err)
	assert.NotNil(t, la)
	info, err := os.Stat(basePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalArchive_RoundTrip(t *testing.T) {
	la, err := storage.NewLocalArchive(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	content := []byte("BEGIN:VCALENDAR")

	size, err := la.Put(ctx, "delivery_schedule/2024/03/11/ab_schedule.ics", "text/calendar", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	rc, err := la.Open(ctx, "delivery_schedule/2024/03/11/ab_schedule.ics")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, la.Delete(ctx, "delivery_schedule/2024/03/11/ab_schedule.ics"))
	_, err = la.Open(ctx, "delivery_schedule/2024/03/11/ab_schedule.ics")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// deleting again is not an error
	assert.NoError(t, la.Delete(ctx, "delivery_schedule/2024/03/11/ab_schedule.ics"))
}

func TestLocalArchive_KeysStayInsideBase(t *testing.T) {
	base := t.TempDir()
	la, err := storage.NewLocalArchive(filepath.Join(base, "archive"))
	require.NoError(t, err)

	_, err = la.Put(context.Background(), "../outside.txt", "text/plain", strings.NewReader("x"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(base, "outside.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "archive", "outside.txt"))
	assert.NoError(t, err)

	_, err = la.Put(context.Background(), "", "text/plain", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestNewArchive_Modes(t *testing.T) {
	logger := zap.NewNop()

	a, err := storage.NewArchive(&config.StorageConfig{Mode: "none"}, logger)
	assert.NoError(t, err)
	assert.Nil(t, a)

	a, err = storage.NewArchive(&config.StorageConfig{Mode: "local", LocalBasePath: t.TempDir()}, logger)
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalArchive{}, a)

	_, err = storage.NewArchive(&config.StorageConfig{Mode: "azure"}, logger)
	assert.Error(t, err)

	_, err = storage.NewArchive(&config.StorageConfig{Mode: "ftp"}, logger)
	assert.Error(t, err)
}
