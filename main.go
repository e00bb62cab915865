package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New(
		"twoip",
		"Resolve geolocation and network provider data of IP addresses with 2ip API.")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("TWOIP_DEBUG").
		Bool()
	apiKey = app.Flag("key", "API key of a paid plan.").
		Short('k').
		Envar("TWOIP_KEY").
		String()
	apiKeyFile = app.Flag("key-file", "Path to a file with the API key.").
			Envar("TWOIP_KEY_FILE").
			String()
	baseURL = app.Flag("url", "Base URL of the API.").
		Envar("TWOIP_URL").
		String()
	connections = app.Flag("connections", "How many parallel connections to make.").
			Short('c').
			Envar("TWOIP_CONNECTIONS").
			Uint()
	timeout = app.Flag("timeout", "Timeout on a single API request.").
		Short('t').
		Envar("TWOIP_TIMEOUT").
		Duration()
	http2 = app.Flag("http2", "Use HTTP/2 for API requests.").
		Envar("TWOIP_HTTP2").
		Bool()
	strict = app.Flag("strict", "Fail on a first invalid IP address instead of skipping it.").
		Envar("TWOIP_STRICT").
		Bool()
	cacheSize = app.Flag("cache-size", "Size of in-process cache for resolved records.").
			Envar("TWOIP_CACHE_SIZE").
			Uint()
	redisURL = app.Flag("redis-url", "Redis URL to use as a shared cache for resolved records.").
			Envar("TWOIP_REDIS_URL").
			String()
	configFile = app.Flag("config", "Path to the config file.").
			Envar("TWOIP_CONFIG").
			File()

	geoCmd    = app.Command("geo", "Resolve geolocation of given IP addresses.")
	geoIPs    = geoCmd.Arg("ip", "IP addresses to resolve.").Required().Strings()
	geoFormat = geoCmd.Flag("format", "Output format.").
			Short('f').
			Default("table").
			Enum("table", "csv", "json")
	geoFields = geoCmd.Flag("fields", "Comma-separated list of fields to render.").
			String()
	geoSort = geoCmd.Flag("sort", "Field name or 0-based column index to sort a table by.").
		String()
	geoDelimiter = geoCmd.Flag("delimiter", "Delimiter to use for csv format.").
			String()

	providerCmd    = app.Command("provider", "Resolve network providers of given IP addresses.")
	providerIPs    = providerCmd.Arg("ip", "IP addresses to resolve.").Required().Strings()
	providerFormat = providerCmd.Flag("format", "Output format.").
			Short('f').
			Default("table").
			Enum("table", "csv", "json")
	providerFields = providerCmd.Flag("fields", "Comma-separated list of fields to render.").
			String()
	providerSort = providerCmd.Flag("sort", "Field name or 0-based column index to sort a table by.").
			String()
	providerDelimiter = providerCmd.Flag("delimiter", "Delimiter to use for csv format.").
				String()

	serveCmd    = app.Command("serve", "Start a local HTTP service which proxies lookups to the API.")
	serveListen = serveCmd.Flag("listen", "host:port to listen on.").
			Short('l').
			Envar("TWOIP_LISTEN").
			String()
	serveAuth = serveCmd.Flag("auth", "user:password pair to protect the service with basic auth.").
			Envar("TWOIP_AUTH").
			String()
)

func init() {
	app.Version(version)
	app.HelpFlag.Short('h')
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	_ = godotenv.Load(".env")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	conf, err := mergeConfig()
	if err != nil {
		log.Fatalf(err.Error())
	}

	client, err := makeClient(conf)
	if err != nil {
		log.Fatalf(err.Error())
	}
	defer client.Close()

	ctx, cancel := makeRootContext()
	defer cancel()

	switch command {
	case geoCmd.FullCommand():
		err = runGeo(ctx, client, *geoIPs, *geoFormat, *geoFields, *geoSort, *geoDelimiter)
	case providerCmd.FullCommand():
		err = runProvider(ctx, client, *providerIPs, *providerFormat, *providerFields, *providerSort, *providerDelimiter)
	case serveCmd.FullCommand():
		err = runServe(ctx, client, conf.Listen, *serveAuth)
	}

	if err != nil {
		log.Fatalf(err.Error())
	}
}
