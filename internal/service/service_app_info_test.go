// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/search-visuals/internal/logger"
	"github.com/MKhiriev/search-visuals/internal/mock"
	"github.com/MKhiriev/search-visuals/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAppInfoService_Health_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockPinger(ctrl)
	build := models.NewAppBuildInfo("1.2.3", "", "")

	db.EXPECT().Ping(gomock.Any()).Return(nil)

	resp, err := NewAppInfoService(db, build, logger.Nop()).Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, StatusOK, resp.Status)
	assert.Equal(t, "1.2.3", resp.Build.Version)
	assert.Equal(t, "N/A", resp.Build.Commit)
}

func TestAppInfoService_Health_DatabaseDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockPinger(ctrl)

	db.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	resp, err := NewAppInfoService(db, models.AppBuildInfo{}, logger.Nop()).Health(context.Background())

	require.Error(t, err)
	assert.Equal(t, StatusUnavailable, resp.Status)
}
