// Package gptkit provides a Go client for an OpenAI-style inference REST API.
//
// Every endpoint returns either an [Object] with a nil error, or a nil Object
// and one of [*APIError], [*NetworkError], or [*DecodeError]. Any status
// other than 200 is an APIError carrying the service's decoded body
// unchanged; callers inspect that body, or use errors.Is with
// [ErrUnauthorized], [ErrNotFound], or [ErrRateLimited].
//
// Basic usage:
//
//	client, err := gptkit.New() // reads OPENAI_API_KEY on every call
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine, err := client.Engine(ctx, "davinci")
//	var apiErr *gptkit.APIError
//	switch {
//	case errors.As(err, &apiErr):
//	    fmt.Println("service error:", apiErr.Body)
//	case err != nil:
//	    log.Fatal(err)
//	default:
//	    fmt.Println(engine.String("id"))
//	}
//
// The client never retries, caches, or rate limits. The only timeout is the
// one in [HTTPOptions], set with OPENAI_HTTP_TIMEOUT or [WithCallTimeout].
package gptkit
