package config

import "strings"

// envKeyReplacer maps viper's dotted keys onto env-style underscores, so
// server.shutdown_timeout reads DYNAFORM_SERVER_SHUTDOWN_TIMEOUT.
var envKeyReplacer = strings.NewReplacer(".", "_")
