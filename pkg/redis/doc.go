// Package redis opens go-redis clients from environment configuration.
//
// The client returned by Connect is handed to registry.NewRedisCache so
// registry lookups can be shared between processes.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	cache := registry.NewRedisCache(client)
package redis
