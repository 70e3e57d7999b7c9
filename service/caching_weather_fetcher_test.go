package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	redisdao "footfall-server/dao/redis"
	"footfall-server/db"
	"footfall-server/models/weather"
)

func TestCachingWeatherFetcher_WritesThroughOnSuccess(t *testing.T) {
	dao := redisdao.NewRedisWeatherDAO(db.NewMockRedisClient(context.Background()))
	upstream := &fakeWeatherFetcher{responses: map[string]*weather.FetchResponse{
		"2024-03-01": okResponse("2024-03-01"),
	}}
	fetcher := NewCachingWeatherFetcher(upstream, dao)

	day := date("2024-03-01")
	resp, err := fetcher.FetchWeatherData(day, day)

	assert.NoError(t, err)
	assert.Equal(t, weather.STATUS_OK, resp.Status)

	cached, err := dao.GetCachedWeather(day)
	assert.NoError(t, err)
	if assert.NotNil(t, cached, "successful fetch results must land in the cache") {
		assert.Equal(t, "clear", cached.Condition)
	}
}

func TestCachingWeatherFetcher_DoesNotCacheFailures(t *testing.T) {
	dao := redisdao.NewRedisWeatherDAO(db.NewMockRedisClient(context.Background()))
	upstream := &fakeWeatherFetcher{} // every date resolves to ERROR status
	fetcher := NewCachingWeatherFetcher(upstream, dao)

	day := date("2024-03-01")
	resp, err := fetcher.FetchWeatherData(day, day)

	assert.NoError(t, err)
	assert.Equal(t, weather.STATUS_ERROR, resp.Status)

	cached, err := dao.GetCachedWeather(day)
	assert.NoError(t, err)
	assert.Nil(t, cached)
}
