// Package redis connects to Redis with retries for the session flag store
// and exposes a ping-based health check for the /healthz endpoint.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
package redis
