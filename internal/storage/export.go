package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// ScoreRow is the Parquet layout of one score history entry.
type ScoreRow struct {
	ID        int64  `parquet:"id"`
	GameID    string `parquet:"game_id,dict"`
	Score     int32  `parquet:"score"`
	CreatedAt int64  `parquet:"created_at_unix_ms"`
}

// ExportScores writes the score history of gameID (all games when empty)
// to outPath and returns the number of rows written.
func (s *Store) ExportScores(outPath, gameID string) (int, error) {
	entries, err := s.AllScores(gameID)
	if err != nil {
		return 0, err
	}

	rows := make([]ScoreRow, len(entries))
	for i, e := range entries {
		rows[i] = ScoreRow{
			ID:        e.ID,
			GameID:    e.GameID,
			Score:     int32(e.Score),
			CreatedAt: e.CreatedAt.UnixMilli(),
		}
	}

	if err := WriteScoresParquet(outPath, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// WriteScoresParquet writes rows to outPath through a temp file and rename.
func WriteScoresParquet(outPath string, rows []ScoreRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "arcade_scores_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot finalize parquet: %w", err)
	}
	return nil
}

// ReadScoresParquet loads every row from a file written by WriteScoresParquet.
func ReadScoresParquet(path string) ([]ScoreRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open parquet: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot stat parquet: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[ScoreRow](pf)
	defer reader.Close()

	rows := make([]ScoreRow, reader.NumRows())
	if len(rows) == 0 {
		return rows, nil
	}
	n, err := reader.Read(rows)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("storage: cannot read parquet: %w", err)
	}
	return rows[:n], nil
}
