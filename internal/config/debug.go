package config

import "os"

func IsDebug() bool {
	return os.Getenv("GEOBOT_DEBUG") == "1"
}
