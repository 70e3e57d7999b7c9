package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"footfall-server/api"
	"footfall-server/api/counter"
	"footfall-server/api/meteo"
	"footfall-server/config"
	"footfall-server/dao/redis"
	"footfall-server/db"
	"footfall-server/server"
	"footfall-server/server/handlers"
	services "footfall-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient             db.RedisClient
	RedisWeatherDao         *redis.RedisWeatherDAO
	MeteoAPI                meteo.WeatherAPI
	CounterAPI              counter.CounterAPI
	WeatherOverlayService   *services.WeatherOverlayService
	DayInsightsService      *services.DayInsightsService
	RecordsRefresherService *services.RecordsRefresherService
	DayHandler              *handlers.DayHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	FootfallHttpServer      *server.FootfallHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewCacheRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Weather cache DAO on top of the redis client
	redisWeatherDao := redis.NewRedisWeatherDAO(redisClient)

	// Outbound collaborators - fixtures outside prod
	var meteoApiClient meteo.WeatherAPI
	var counterApiClient counter.CounterAPI
	if env != "prod" {
		meteoApiClient = meteo.NewMeteoApiClientMock(
			config.GetResourcePath(config.WEATHER_RESPONSE_RESOURCE))
		counterApiClient = counter.NewCounterApiClientMock(
			config.GetResourcePath(config.VISITOR_RECORDS_RESOURCE))
		log.Printf("Using mock meteo and counter api clients")
	} else {
		log.Printf("Using prod meteo and counter api clients")
		meteoApiClient = meteo.NewMeteoApiClient(api.NewHTTPClient(config.MeteoEndpoint()))
		counterApiClient = counter.NewCounterApiClient(api.NewHTTPClient(config.CounterEndpoint()))
	}

	// Fetches write through to the cache; the overlay itself only reads.
	cachingFetcher := services.NewCachingWeatherFetcher(meteoApiClient, redisWeatherDao)

	weatherOverlayService := services.NewWeatherOverlayService(redisWeatherDao, cachingFetcher)

	dayInsightsService := services.NewDayInsightsService(weatherOverlayService)

	recordsRefresherService := services.NewRecordsRefresherService(counterApiClient, dayInsightsService)

	dayHandler := handlers.NewDayHandler(dayInsightsService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(dayHandler, muxRouter)
	footfallHttpServer := server.NewFootfallHttpServer(router, muxRouter, config.ServerPort())

	return &Container{
		RedisClient:             redisClient,
		RedisWeatherDao:         redisWeatherDao,
		MeteoAPI:                meteoApiClient,
		CounterAPI:              counterApiClient,
		WeatherOverlayService:   weatherOverlayService,
		DayInsightsService:      dayInsightsService,
		RecordsRefresherService: recordsRefresherService,
		DayHandler:              dayHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		FootfallHttpServer:      footfallHttpServer,
	}
}
