package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"footfall-server/db"
	"footfall-server/models/weather"
	"footfall-server/util"
)

// WEATHER_DAY_KEY_FORMAT caches one WeatherInfo per API-formatted date.
const WEATHER_DAY_KEY_FORMAT = "weather_day_v1:%s"

// RedisWeatherDAO handles the per-day weather cache in Redis.
type RedisWeatherDAO struct {
	client db.RedisClient
}

// NewRedisWeatherDAO initializes a RedisWeatherDAO with the Redis client.
func NewRedisWeatherDAO(client db.RedisClient) *RedisWeatherDAO {
	return &RedisWeatherDAO{client: client}
}

// GetCachedWeather returns the cached entry for a date, or nil on a miss.
func (dao *RedisWeatherDAO) GetCachedWeather(date time.Time) (*weather.WeatherInfo, error) {
	key := fmt.Sprintf(WEATHER_DAY_KEY_FORMAT, util.FormatAPIDate(date))
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get weather entry from redis: %w", err)
	}
	var info weather.WeatherInfo
	if err := json.Unmarshal([]byte(str), &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weather entry JSON: %w", err)
	}
	return &info, nil
}

// SetCachedWeather caches a weather entry under its own date key.
func (dao *RedisWeatherDAO) SetCachedWeather(info weather.WeatherInfo) error {
	key := fmt.Sprintf(WEATHER_DAY_KEY_FORMAT, info.DateKey)
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal weather entry for %s: %w", info.DateKey, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set weather entry in redis: %w", err)
	}
	return nil
}

// ListCachedWeatherDates returns the API-formatted dates of every cached entry.
func (dao *RedisWeatherDAO) ListCachedWeatherDates() ([]string, error) {
	pattern := fmt.Sprintf(WEATHER_DAY_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list weather keys: %w", err)
	}

	prefix := fmt.Sprintf(WEATHER_DAY_KEY_FORMAT, "")
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, strings.TrimPrefix(k, prefix))
	}
	return dates, nil
}

// DeleteCachedWeather drops the entry for an API-formatted date.
func (dao *RedisWeatherDAO) DeleteCachedWeather(dateKey string) error {
	key := fmt.Sprintf(WEATHER_DAY_KEY_FORMAT, dateKey)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete weather key %s: %w", key, err)
	}
	log.Printf("[RedisWeatherDAO] Deleted weather cache for %s", dateKey)
	return nil
}
