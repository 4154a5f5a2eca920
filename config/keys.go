package config

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigLogPrefix      = ConfigPrefix + delimiter + "log"
	ConfigLogLevel       = ConfigLogPrefix + delimiter + "level"
	ConfigLogDevelopment = ConfigLogPrefix + delimiter + "development"

	ConfigEstimatorPrefix        = ConfigPrefix + delimiter + "estimator"
	ConfigEstimatorTolerance     = ConfigEstimatorPrefix + delimiter + "tolerance"
	ConfigEstimatorMaxPopulation = ConfigEstimatorPrefix + delimiter + "max_population"

	ConfigCachePrefix     = ConfigPrefix + delimiter + "cache"
	ConfigCacheKind       = ConfigCachePrefix + delimiter + "kind"
	ConfigCacheMaxEntries = ConfigCachePrefix + delimiter + "max_entries"
	ConfigCacheMaxCost    = ConfigCachePrefix + delimiter + "max_cost"

	// EnvPrefix marks environment variables overriding config keys, e.g.
	// POPPROB_ESTIMATOR_MAX_POPULATION for config.estimator.max_population.
	EnvPrefix = "POPPROB_"
)

// Values of config.cache.kind.
const (
	CacheUnbounded  = "unbounded"
	CacheGeneration = "generation"
	CacheRistretto  = "ristretto"
)
