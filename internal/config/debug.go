package config

import "os"

func IsDebug() bool {
	return os.Getenv("EVENTDASH_DEBUG") == "1"
}
