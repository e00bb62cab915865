package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"

	"github.com/2ip-api/twoip/config"
	"github.com/2ip-api/twoip/twoiplib"
)

const redisCacheTTL = 24 * time.Hour

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func mergeConfig() (*config.Config, error) {
	var reader io.Reader = strings.NewReader("")

	if *configFile != nil {
		defer (*configFile).Close()

		reader = *configFile
	}

	conf, err := config.Parse(reader)
	if err != nil {
		return nil, err
	}

	if *baseURL != "" {
		conf.URL = *baseURL
	}

	if *apiKey != "" {
		conf.Key = *apiKey
		conf.KeyFile = ""
	}

	if *apiKeyFile != "" {
		conf.KeyFile = *apiKeyFile
	}

	if *connections != 0 {
		conf.Connections = *connections
	}

	if *timeout != 0 {
		conf.Timeout.Duration = *timeout
	}

	if *http2 {
		conf.HTTP2 = true
	}

	if *strict {
		conf.Strict = true
	}

	if *cacheSize != 0 {
		conf.CacheSize = *cacheSize
	}

	if *redisURL != "" {
		conf.RedisURL = *redisURL
	}

	if *serveListen != "" {
		conf.Listen = *serveListen
	}

	return conf, nil
}

func makeClient(conf *config.Config) (*twoiplib.Client, error) {
	key, err := conf.ResolveKey(afero.NewOsFs())
	if err != nil {
		return nil, err
	}

	cache, err := makeCache(conf)
	if err != nil {
		return nil, err
	}

	return twoiplib.New(twoiplib.Options{
		Key:         key,
		BaseURL:     conf.URL,
		Connections: int(conf.Connections),
		Timeout:     conf.Timeout.Duration,
		HTTP2:       conf.HTTP2,
		Strict:      conf.Strict,
		UserAgent:   "twoip/" + version,
		Cache:       cache,
		Logger:      newLogger(),
	})
}

func makeCache(conf *config.Config) (twoiplib.Cache, error) {
	if conf.RedisURL != "" {
		redisOpts, err := redis.ParseURL(conf.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("cannot parse redis url: %w", err)
		}

		return twoiplib.NewRedisCache(redis.NewClient(redisOpts), redisCacheTTL), nil
	}

	if conf.CacheSize == 0 {
		return nil, nil
	}

	return twoiplib.NewLRUCache(int(conf.CacheSize))
}

type renderable interface {
	JSON() (string, error)
	Table(fields []string, sortBy string) (string, error)
	CSV(fields []string, delimiter rune) (string, error)
}

func runGeo(ctx context.Context, client *twoiplib.Client, ips []string, format, fields, sortBy, delimiter string) error {
	results, err := client.Geo(ctx, ips)
	if err != nil {
		return err
	}

	return renderResults(results, format, fields, sortBy, delimiter)
}

func runProvider(ctx context.Context, client *twoiplib.Client, ips []string, format, fields, sortBy, delimiter string) error {
	results, err := client.Provider(ctx, ips)
	if err != nil {
		return err
	}

	return renderResults(results, format, fields, sortBy, delimiter)
}

func renderResults(results renderable, format, fields, sortBy, delimiter string) error {
	var out string
	var err error

	switch format {
	case "json":
		out, err = results.JSON()
	case "csv":
		delim, delimErr := csvDelimiter(delimiter)
		if delimErr != nil {
			return delimErr
		}

		out, err = results.CSV(splitFields(fields), delim)
	default:
		out, err = results.Table(splitFields(fields), sortBy)
	}

	if err != nil {
		return err
	}

	fmt.Println(strings.TrimRight(out, "\n"))

	return nil
}

func splitFields(raw string) []string {
	if raw == "" {
		return nil
	}

	fields := strings.Split(raw, ",")

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields
}

func csvDelimiter(raw string) (rune, error) {
	switch utf8.RuneCountInString(raw) {
	case 0:
		return 0, nil
	case 1:
		delim, _ := utf8.DecodeRuneInString(raw)

		return delim, nil
	default:
		return 0, fmt.Errorf("incorrect csv delimiter %q", raw)
	}
}
