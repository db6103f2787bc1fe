// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/models"
)

type searchHistoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSearchHistoryRepository constructs a [SearchHistoryRepository] backed
// by the "search_history" table.
func NewSearchHistoryRepository(db *DB, logger *logger.Logger) SearchHistoryRepository {
	logger.Debug().Msg("creating search history repository")
	return &searchHistoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *searchHistoryRepository) RecordSearch(ctx context.Context, entry models.SearchHistoryEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(entry.TableName()).
		Columns("user_id", "query", "media_type").
		Values(entry.UserID, entry.Query, string(entry.MediaType)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*searchHistoryRepository.RecordSearch").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.db.logFailure(ctx, err, "*searchHistoryRepository.RecordSearch", "error inserting search history entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *searchHistoryRepository) ListHistory(ctx context.Context, userID int64) ([]models.SearchHistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("query", "media_type", "search_time").
		From(models.SearchHistoryEntry{}.TableName()).
		Where("user_id = ?", userID).
		OrderBy("search_time DESC", "id DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*searchHistoryRepository.ListHistory").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.db.logFailure(ctx, err, "*searchHistoryRepository.ListHistory", "error selecting search history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	history := make([]models.SearchHistoryEntry, 0)
	for rows.Next() {
		entry := models.SearchHistoryEntry{UserID: userID}
		if err := rows.Scan(&entry.Query, &entry.MediaType, &entry.SearchTime); err != nil {
			log.Err(err).Str("func", "*searchHistoryRepository.ListHistory").Msg("error scanning search history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		history = append(history, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*searchHistoryRepository.ListHistory").Msg("error iterating search history rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return history, nil
}
