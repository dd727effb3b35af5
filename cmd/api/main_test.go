package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "choukette/internal/adapter/repository"
	"choukette/internal/domain/service"
	"choukette/internal/infrastructure/firebase"
	"choukette/pkg/config"
)

func setupSQLiteEnv(t *testing.T, seed map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshots.db")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", path)
	t.Setenv("SNAPSHOT_BUCKET", "")
	t.Setenv("ENVIRONMENT", "test")

	repo, closeRepo, err := adapterrepo.NewSQLiteSnapshotRepository(path)
	require.NoError(t, err)
	for k, v := range seed {
		require.NoError(t, repo.Set(context.Background(), k, v))
	}
	require.NoError(t, closeRepo())

	return path
}

func runCLI(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestSnapshotsListAndClear(t *testing.T) {
	setupSQLiteEnv(t, map[string]string{
		service.KeyUser:      `{"id":"u1","type":"admin"}`,
		service.KeyBlogPosts: `{"seedVersion":1,"posts":[]}`,
	})

	out := runCLI(t, "snapshots", "list")
	assert.Equal(t, []string{service.KeyBlogPosts, service.KeyUser}, strings.Fields(out))

	out = runCLI(t, "snapshots", "clear", service.KeyUser)
	assert.Contains(t, out, "Cleared 1 snapshot(s)")

	out = runCLI(t, "snapshots", "list")
	assert.Equal(t, []string{service.KeyBlogPosts}, strings.Fields(out))

	runCLI(t, "snapshots", "clear")
	assert.Empty(t, strings.TrimSpace(runCLI(t, "snapshots", "list")))
}

func TestSnapshotsExportToStdout(t *testing.T) {
	setupSQLiteEnv(t, map[string]string{
		service.KeyProfessionalStats: `{"currentProfessionalId":"pro1"}`,
	})

	out := runCLI(t, "snapshots", "export", "--stdout")

	var dump map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &dump))
	assert.Equal(t, `{"currentProfessionalId":"pro1"}`, dump[service.KeyProfessionalStats])
}

func TestExportUsesFirebaseCredentials(t *testing.T) {
	cfg := &config.Config{
		FirebaseServiceAccountJSON: `{"type":"service_account"}`,
		FirebaseServiceAccountPath: "/etc/choukette/sa.json",
	}
	assert.Equal(t, firebase.Credentials{
		JSON: `{"type":"service_account"}`,
		Path: "/etc/choukette/sa.json",
	}, firebaseCredentials(cfg))

	setupSQLiteEnv(t, map[string]string{service.KeyUser: `{"id":"u1"}`})
	t.Setenv("SNAPSHOT_BUCKET", "choukette-exports")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_JSON", "")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_PATH", filepath.Join(t.TempDir(), "missing.json"))
	exportStdout = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"snapshots", "export"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service account file does not exist")
}

func TestUnknownDriverIsRejected(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "etcd")

	rootCmd.SetArgs([]string{"snapshots", "list"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	assert.Error(t, rootCmd.Execute())
}
