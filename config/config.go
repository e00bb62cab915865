package config

import (
	"io"
	"io/ioutil"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"

	"github.com/2ip-api/twoip/twoiplib"
)

const (
	DefaultListen    = "127.0.0.1:8000"
	DefaultCacheSize = 256
)

var VALID_SCHEMES = map[string]bool{
	"http":  true,
	"https": true,
}

type duration struct {
	time.Duration
}

func (dur *duration) UnmarshalText(text []byte) (err error) {
	dur.Duration, err = time.ParseDuration(string(text))
	return
}

type Config struct {
	URL         string
	Key         string
	KeyFile     string `toml:"key_file"`
	Connections uint
	Timeout     duration
	HTTP2       bool
	Strict      bool
	CacheSize   uint   `toml:"cache_size"`
	RedisURL    string `toml:"redis_url"`
	Listen      string
}

func Parse(file io.Reader) (*Config, error) {
	conf := &Config{
		URL:         twoiplib.DefaultBaseURL,
		Connections: twoiplib.DefaultConnections,
		Timeout:     duration{twoiplib.DefaultTimeout},
		CacheSize:   DefaultCacheSize,
		Listen:      DefaultListen,
	}

	buf, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot read config file")
	}

	if _, err := toml.Decode(string(buf), conf); err != nil {
		return nil, errors.Annotate(err, "Cannot parse config file")
	}

	if err = validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	return conf, nil
}

func validate(conf *Config) error {
	parsed, err := url.Parse(conf.URL)
	if err != nil {
		return errors.Annotatef(err, "Incorrect url %s", conf.URL)
	}

	if _, ok := VALID_SCHEMES[parsed.Scheme]; !ok {
		return errors.Errorf("Unknown url scheme %s", parsed.Scheme)
	}

	if conf.Connections > twoiplib.MaxConnections {
		return errors.Errorf("Incorrect number of connections %d", conf.Connections)
	}

	if conf.Timeout.Duration < 0 {
		return errors.Errorf("Incorrect timeout %s", conf.Timeout.Duration)
	}

	if conf.Key != "" && conf.KeyFile != "" {
		return errors.New("Cannot use both key and key_file")
	}

	if conf.RedisURL != "" {
		if _, err := redis.ParseURL(conf.RedisURL); err != nil {
			return errors.Annotatef(err, "Incorrect redis url %s", conf.RedisURL)
		}
	}

	if _, _, err := net.SplitHostPort(conf.Listen); err != nil {
		return errors.Annotatef(err, "Incorrect listen address %s", conf.Listen)
	}

	return nil
}

// ResolveKey returns the API key, reading key_file if the key is not
// given inline.
func (conf *Config) ResolveKey(fs afero.Fs) (string, error) {
	if conf.Key != "" {
		return conf.Key, nil
	}

	if conf.KeyFile == "" {
		return "", nil
	}

	buf, err := afero.ReadFile(fs, conf.KeyFile)
	if err != nil {
		return "", errors.Annotatef(err, "Cannot read key file %s", conf.KeyFile)
	}

	return strings.TrimSpace(string(buf)), nil
}
