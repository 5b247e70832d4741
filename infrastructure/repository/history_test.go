package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analysis-agent/infrastructure/database/sqlite"
	"github.com/vfg2006/sales-analysis-agent/internal/domain"
	"github.com/vfg2006/sales-analysis-agent/pkg/log"
	"github.com/vfg2006/sales-analysis-agent/pkg/utils"
)

func init() {
	log.SetupTestLogger()
}

func entry(id, question string) domain.AnalysisEntry {
	return domain.AnalysisEntry{
		ID:           id,
		Timestamp:    "2024-03-10T14:05:00",
		Prompt:       "prompt " + id,
		UserQuestion: question,
		SourceData:   domain.DefaultSalesData,
		ResultText:   "Análise " + id + " com acentuação: região, mês",
		Provider:     "gemini",
		Model:        "gemini-1.5-flash",
	}
}

func TestFileHistoryRepository_LoadMissingFile(t *testing.T) {
	repo := NewFileHistoryRepository(filepath.Join(t.TempDir(), "historico.json"))

	entries := repo.Load(context.Background())
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestFileHistoryRepository_AppendThenLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "historico.json")
	repo := NewFileHistoryRepository(path)

	e1 := entry("a1", "")
	require.NoError(t, repo.Append(ctx, e1))
	assert.Equal(t, []domain.AnalysisEntry{e1}, repo.Load(ctx))

	e2 := entry("a2", "Qual região vende mais?")
	require.NoError(t, repo.Append(ctx, e2))
	assert.Equal(t, []domain.AnalysisEntry{e1, e2}, repo.Load(ctx))
}

func TestFileHistoryRepository_FileFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "historico.json")
	repo := NewFileHistoryRepository(path)

	e1, e2 := entry("a1", ""), entry("a2", "")
	require.NoError(t, repo.Append(ctx, e1))
	require.NoError(t, repo.Append(ctx, e2))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	// mesmo conteúdo de uma gravação direta de [e1, e2]
	expected, err := utils.IndentJSON.MarshalIndent([]domain.AnalysisEntry{e1, e2}, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(content))

	assert.True(t, strings.HasPrefix(string(content), "[\n  {"))
	assert.Contains(t, string(content), "acentuação: região, mês")
}

func TestFileHistoryRepository_CorruptedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "json malformado", content: "{not valid"},
		{name: "objeto na raiz", content: `{"id":"x"}`},
		{name: "arquivo vazio", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "historico.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			repo := NewFileHistoryRepository(path)
			assert.Empty(t, repo.Load(ctx))

			// a próxima inclusão recomeça o histórico
			e1 := entry("a1", "")
			require.NoError(t, repo.Append(ctx, e1))
			assert.Equal(t, []domain.AnalysisEntry{e1}, repo.Load(ctx))
		})
	}
}

func TestFileHistoryRepository_Clear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "historico.json")
	repo := NewFileHistoryRepository(path)

	// limpar um histórico inexistente não é erro
	require.NoError(t, repo.Clear(ctx))

	require.NoError(t, repo.Append(ctx, entry("a1", "")))
	require.NoError(t, repo.Clear(ctx))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, repo.Load(ctx))
}

func TestFileHistoryRepository_AppendFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "arquivo")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// o diretório pai é um arquivo comum
	repo := NewFileHistoryRepository(filepath.Join(blocker, "historico.json"))
	assert.Error(t, repo.Append(context.Background(), entry("a1", "")))
}

func TestSQLiteHistoryRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()

	conn, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "historico.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	repo := NewSQLiteHistoryRepository(conn)
	require.NoError(t, repo.EnsureSchema(ctx))
	// idempotente
	require.NoError(t, repo.EnsureSchema(ctx))

	assert.Empty(t, repo.Load(ctx))

	e1, e2 := entry("a1", ""), entry("a2", "Qual produto cresce?")
	require.NoError(t, repo.Append(ctx, e1))
	require.NoError(t, repo.Append(ctx, e2))

	assert.Equal(t, []domain.AnalysisEntry{e1, e2}, repo.Load(ctx))

	require.NoError(t, repo.Clear(ctx))
	assert.Empty(t, repo.Load(ctx))
}

func TestSQLiteHistoryRepository_LoadWithoutSchema(t *testing.T) {
	ctx := context.Background()

	conn, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "historico.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	repo := NewSQLiteHistoryRepository(conn)
	assert.Empty(t, repo.Load(ctx))
	assert.Error(t, repo.Append(ctx, entry("a1", "")))
}
